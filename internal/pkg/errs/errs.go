package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is はマーク（cr.Mark）もwrapチェーンも両方たどる。
// 標準ライブラリのerrors.Isはマークを見ないため、センチネル判定はこちらを使う。
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}
