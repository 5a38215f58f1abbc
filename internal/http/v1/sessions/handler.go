package sessions

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/neshama/memorial/internal/platform/auth"
	applog "github.com/neshama/memorial/internal/platform/logging"
)

// Register wires login and session routes into the provided API router.
func Register(api huma.API, svc *auth.Service, verifier auth.Verifier) {
	huma.Register(api, huma.Operation{
		OperationID:   "request-login-code",
		Method:        http.MethodPost,
		Path:          "/auth/codes",
		Summary:       "Request a one-time login code",
		Description:   "Issues a short-lived login code for the given address. The code is delivered out of band and never returned in the response.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusAccepted,
	}, func(ctx context.Context, input *CodeRequestInput) (*struct{}, error) {
		code := svc.IssueCode(input.Body.Email)

		// Stand-in for the mail delivery integration.
		applog.LogInfo(ctx, "login code issued",
			zap.String("email", input.Body.Email),
			zap.String("code", code))
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-session",
		Method:        http.MethodPost,
		Path:          "/auth/sessions",
		Summary:       "Redeem a login code",
		Description:   "Exchanges a valid one-time code for a bearer session token. Codes are single use and expire after ten minutes.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *SessionCreateInput) (*SessionCreateOutput, error) {
		token, ok := svc.VerifyCode(input.Body.Email, input.Body.Code)
		if !ok {
			return nil, huma.Error401Unauthorized("invalid or expired code")
		}

		user, err := verifier.Verify(ctx, token)
		if err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}
		return &SessionCreateOutput{
			Body: Session{
				Token:   token,
				Email:   user.Email,
				IsAdmin: user.IsAdmin,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-session",
		Method:      http.MethodGet,
		Path:        "/auth/sessions",
		Summary:     "Get the current session",
		Description: "Returns the identity bound to the presented bearer token.",
		Tags:        []string{"Auth"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *struct{}) (*SessionGetOutput, error) {
		user := auth.UserFromContext(ctx)
		return &SessionGetOutput{
			Body: Session{
				Email:   user.Email,
				IsAdmin: user.IsAdmin,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-session",
		Method:        http.MethodDelete,
		Path:          "/auth/sessions",
		Summary:       "End the current session",
		Description:   "Revokes the presented bearer token. The token stops working immediately.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(_ context.Context, input *SessionDeleteInput) (*struct{}, error) {
		token, err := auth.ExtractBearerToken(input.Authorization)
		if err == nil {
			svc.Revoke(token)
		}
		return nil, nil
	})
}
