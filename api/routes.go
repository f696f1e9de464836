package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/logging"

	authv1 "github.com/Teru3301/FinanceApp/internal/handlers/v1/auth"
	categoryv1 "github.com/Teru3301/FinanceApp/internal/handlers/v1/category"
	dashboardv1 "github.com/Teru3301/FinanceApp/internal/handlers/v1/dashboard"
	goalv1 "github.com/Teru3301/FinanceApp/internal/handlers/v1/goal"
	reportv1 "github.com/Teru3301/FinanceApp/internal/handlers/v1/report"
	statusv1 "github.com/Teru3301/FinanceApp/internal/handlers/v1/status"
	transactionv1 "github.com/Teru3301/FinanceApp/internal/handlers/v1/transaction"
	userv1 "github.com/Teru3301/FinanceApp/internal/handlers/v1/user"
	"github.com/Teru3301/FinanceApp/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Verifier *auth.TokenIssuer
	Services *service.Service
}

// Router builds the full API: every v1 handler registered on a Huma API over
// an http.ServeMux, wrapped in CORS and panic recovery.
func (r *Rest) Router() http.Handler {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, huma.DefaultConfig("FinanceApp API", "1.0.0"))

	humaAPI.UseMiddleware(logging.Middleware(r.Logger))
	humaAPI.UseMiddleware(auth.Middleware(humaAPI, r.Verifier))

	statusv1.NewHandler().Register(humaAPI)

	authv1.NewRegisterHandler(r.Services.Auth).Register(humaAPI)
	authv1.NewLoginHandler(r.Services.Auth).Register(humaAPI)
	authv1.NewForgotPasswordHandler(r.Services.Auth).Register(humaAPI)

	userv1.NewGetProfileHandler(r.Services.Users).Register(humaAPI)
	userv1.NewUpdateProfileHandler(r.Services.Users).Register(humaAPI)
	userv1.NewChangePasswordHandler(r.Services.Users).Register(humaAPI)
	userv1.NewStatsHandler(r.Services.Users).Register(humaAPI)
	userv1.NewDeleteAccountHandler(r.Services.Users).Register(humaAPI)

	transactionv1.NewCreateTransactionHandler(r.Services.Transactions).Register(humaAPI)
	transactionv1.NewListTransactionsHandler(r.Services.Transactions).Register(humaAPI)
	transactionv1.NewDeleteTransactionHandler(r.Services.Transactions).Register(humaAPI)

	categoryv1.NewCreateCategoryHandler(r.Services.Categories).Register(humaAPI)
	categoryv1.NewListCategoriesHandler(r.Services.Categories).Register(humaAPI)
	categoryv1.NewDeleteCategoryHandler(r.Services.Categories).Register(humaAPI)

	goalv1.NewCreateGoalHandler(r.Services.Goals).Register(humaAPI)
	goalv1.NewListGoalsHandler(r.Services.Goals).Register(humaAPI)
	goalv1.NewActiveGoalsHandler(r.Services.Goals).Register(humaAPI)
	goalv1.NewUpdateGoalHandler(r.Services.Goals).Register(humaAPI)
	goalv1.NewDeleteGoalHandler(r.Services.Goals).Register(humaAPI)

	dashboardv1.NewStatsHandler(r.Services.Stats).Register(humaAPI)
	reportv1.NewMonthlyReportHandler(r.Services.Stats).Register(humaAPI)

	return withCORS(withRecovery(r.Logger, mux))
}

func (r *Rest) Serve() error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return err
}
