package service

import (
	"Agora/internal/pkg/apiclient"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitInvalid, ExitCode(&ValidationError{Field: "content", Err: ErrContentTooLong}))
	assert.Equal(t, ExitInvalid, ExitCode(&MediaRejectedError{FileName: "a", Err: ErrFileTooLarge}))
	assert.Equal(t, ExitBusy, ExitCode(fmt.Errorf("submit: %w", ErrComposerBusy)))
	assert.Equal(t, ExitRemote, ExitCode(&apiclient.RequestError{StatusCode: 400, Message: "bad"}))
	assert.Equal(t, ExitRemote, ExitCode(&apiclient.DecodeError{Op: "GET /api/posts", StatusCode: 200, Err: errors.New("eof")}))
	assert.Equal(t, ExitNetwork, ExitCode(fmt.Errorf("wrap: %w", &apiclient.NetworkError{Op: "GET", Err: errors.New("refused")})))
	assert.Equal(t, ExitUnexpected, ExitCode(errors.New("other")))
}
