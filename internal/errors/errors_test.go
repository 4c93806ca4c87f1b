package errors

import (
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(New("boom"), ExitUser),
			want: "boom",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitSystem),
			want: "exit code 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	underlying := ErrDuplicateSkill
	err := NewUserError(Wrap(underlying, "building catalog"), "rename one of the skills")

	if !Is(err, ErrDuplicateSkill) {
		t.Error("expected errors.Is to find ErrDuplicateSkill through the chain")
	}

	var exitErr *ExitError
	if !As(err, &exitErr) {
		t.Fatal("expected errors.As to find ExitError")
	}
	if exitErr.Code != ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitUser)
	}
	if exitErr.Suggestion == "" {
		t.Error("expected suggestion to be preserved")
	}
}

func TestNewSystemError(t *testing.T) {
	err := NewSystemError(ErrSourceUnreadable, "check the --source path")
	if err.Code != ExitSystem {
		t.Errorf("Code = %d, want %d", err.Code, ExitSystem)
	}
	if !Is(err, ErrSourceUnreadable) {
		t.Error("expected ErrSourceUnreadable in chain")
	}
}
