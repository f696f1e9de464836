package user

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/service"
)

func identityMiddleware(identity auth.Identity) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithIdentity(ctx.Context(), identity)))
	}
}

type mockPasswordChanger struct {
	mock.Mock
}

func (m *mockPasswordChanger) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	args := m.Called(ctx, userID, current, next)
	return args.Error(0)
}

func newChangePasswordTestAPI(t *testing.T, svc passwordChanger, identity auth.Identity) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(identityMiddleware(identity))
	NewChangePasswordHandler(svc).Register(api)
	return api
}

func TestHTTP_ChangePassword_Success(t *testing.T) {
	caller := auth.Identity{UserID: uuid.Must(uuid.NewV4())}

	mockSvc := new(mockPasswordChanger)
	mockSvc.On("ChangePassword", mock.Anything, caller.UserID, "old-password-1", "new-password-1").Return(nil)

	resp := newChangePasswordTestAPI(t, mockSvc, caller).Patch("/api/user/password", ChangePasswordBody{
		CurrentPassword: "old-password-1",
		NewPassword:     "new-password-1",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ChangePassword_WrongCurrent(t *testing.T) {
	caller := auth.Identity{UserID: uuid.Must(uuid.NewV4())}

	mockSvc := new(mockPasswordChanger)
	mockSvc.On("ChangePassword", mock.Anything, caller.UserID, "wrong-password", "new-password-1").
		Return(service.ErrPasswordMismatch)

	resp := newChangePasswordTestAPI(t, mockSvc, caller).Patch("/api/user/password", ChangePasswordBody{
		CurrentPassword: "wrong-password",
		NewPassword:     "new-password-1",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_ChangePassword_ShortNewPassword(t *testing.T) {
	caller := auth.Identity{UserID: uuid.Must(uuid.NewV4())}
	mockSvc := new(mockPasswordChanger)

	resp := newChangePasswordTestAPI(t, mockSvc, caller).Patch("/api/user/password", ChangePasswordBody{
		CurrentPassword: "old-password-1",
		NewPassword:     "short",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "ChangePassword")
}
