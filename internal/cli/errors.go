package cli

import (
	"errors"
	"fmt"

	"github.com/kilomoco/kilomoco/internal/config"
	"github.com/kilomoco/kilomoco/internal/output"
)

// editorExitError carries the editor's exit status through cobra so the
// process can exit with the same code.
type editorExitError struct {
	code int
}

// Error implements the error interface.
func (e *editorExitError) Error() string {
	return fmt.Sprintf("editor exited with code %d", e.code)
}

// profileError upgrades an unknown-profile error to a hinted CLI error.
// Other errors pass through unchanged.
func profileError(err error) error {
	var unknown *config.UnknownProfileError
	if errors.As(err, &unknown) {
		return output.NewCLIError(err.Error()).
			WithHint("run 'kilomoco list' to see available profiles")
	}
	return err
}
