//go:build !cgo

package hal

import "github.com/cockroachdb/errors"

func RunWindow(_ HAL, _ string, _ int) error {
	return errors.WithHint(errors.New("window mode requires cgo"),
		"build and run with CGO_ENABLED=1, or drop -window")
}
