package commands

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"movecar/internal/domain/session"
	"movecar/internal/pkg/config"
	"movecar/internal/pkg/errs"
	"movecar/internal/pkg/geo"
)

type NotifyInput struct {
	Message      string
	Location     *session.Location
	SessionToken string
}

type SessionCommands interface {
	// Notify opens (or overwrites) the user's session and fans out push
	// notifications. origin is the request origin used for the confirm
	// link when no external URL is configured.
	Notify(ctx context.Context, user session.UserKey, in NotifyInput, origin string) error

	// Confirm transitions the session to confirmed. Confirming an
	// already-expired session is accepted and does nothing.
	Confirm(ctx context.Context, user session.UserKey, loc *session.Location) error
}

type sessionCommandsImpl struct {
	writer     SessionWriter
	guard      CooldownGuard
	dispatcher Dispatcher
	settings   config.Settings
	logger     *slog.Logger
}

func NewSessionCommands(writer SessionWriter, guard CooldownGuard, dispatcher Dispatcher, settings config.Settings, logger *slog.Logger) SessionCommands {
	return &sessionCommandsImpl{
		writer:     writer,
		guard:      guard,
		dispatcher: dispatcher,
		settings:   settings,
		logger:     logger,
	}
}

func (uc *sessionCommandsImpl) Notify(ctx context.Context, user session.UserKey, in NotifyInput, origin string) error {
	msg, err := session.NewMessage(in.Message)
	if err != nil {
		return err
	}

	locked, err := uc.guard.InCooldown(ctx, user)
	if err != nil {
		return err
	}
	if locked {
		return errs.ErrRateLimited
	}

	if err := uc.writer.OpenWaiting(ctx, user, in.SessionToken, place(in.Location)); err != nil {
		return err
	}

	// Cooldown is armed before dispatch: a failed push still burns the
	// window, so a broken channel cannot be used to spam the owner.
	if err := uc.guard.Arm(ctx, user); err != nil {
		return err
	}

	carTitle := uc.settings.CarTitle(user.String())
	outcomes := uc.dispatcher.Dispatch(ctx, Notification{
		User:       user,
		Title:      "🚗 挪车请求：" + carTitle,
		Body:       "🚗 挪车请求【" + carTitle + "】\n💬 留言: " + msg.String(),
		ConfirmURL: uc.confirmURL(user, origin),
	})

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	uc.logger.Info("notify dispatched",
		"user", user.String(),
		"channels", len(outcomes),
		"failed", failed,
		"has_location", in.Location != nil,
	)
	return nil
}

func (uc *sessionCommandsImpl) Confirm(ctx context.Context, user session.UserKey, loc *session.Location) error {
	existed, err := uc.writer.Confirm(ctx, user, place(loc))
	if err != nil {
		return err
	}
	if !existed {
		uc.logger.Info("confirm on absent session ignored", "user", user.String())
		return nil
	}
	uc.logger.Info("session confirmed", "user", user.String(), "has_location", loc != nil)
	return nil
}

func (uc *sessionCommandsImpl) confirmURL(user session.UserKey, origin string) string {
	base := uc.settings.ExternalURL()
	if base == "" {
		base = strings.TrimSuffix(origin, "/")
	}
	return base + "/owner-confirm?u=" + url.QueryEscape(user.String())
}

// place turns a raw coordinate into its stored form with map links.
func place(loc *session.Location) *session.PlacedLocation {
	if loc == nil {
		return nil
	}
	links := geo.BuildMapLinks(loc.Lat, loc.Lng)
	return &session.PlacedLocation{
		Location: *loc,
		AmapURL:  links.AmapURL,
		AppleURL: links.AppleURL,
	}
}
