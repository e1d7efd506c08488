package app

import (
	"exchanger/internal/app/deps"
	"exchanger/internal/app/services"
	"exchanger/internal/http/handlers/auth"
	authenticate "exchanger/internal/http/handlers/auth/authenticate"
	checksuperuser "exchanger/internal/http/handlers/auth/check_superuser"
	resetpassword "exchanger/internal/http/handlers/auth/reset_password"
	sendpasswordresetlink "exchanger/internal/http/handlers/auth/send_password_reset_link"
	createcurrency "exchanger/internal/http/handlers/currencies/create_currency"
	deletecurrency "exchanger/internal/http/handlers/currencies/delete_currency"
	listcurrencies "exchanger/internal/http/handlers/currencies/list_currencies"
	renamecurrency "exchanger/internal/http/handlers/currencies/rename_currency"
	clearevents "exchanger/internal/http/handlers/events/clear_events"
	createevent "exchanger/internal/http/handlers/events/create_event"
	deleteevent "exchanger/internal/http/handlers/events/delete_event"
	listevents "exchanger/internal/http/handlers/events/list_events"
	updateevent "exchanger/internal/http/handlers/events/update_event"
	createuser "exchanger/internal/http/handlers/users/create_user"
	deleteuser "exchanger/internal/http/handlers/users/delete_user"
	getuser "exchanger/internal/http/handlers/users/get_user"
	listusers "exchanger/internal/http/handlers/users/list_users"
	updateuser "exchanger/internal/http/handlers/users/update_user"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode
	requireAuth := auth.RequireAuthentication(deps.AccessTokenParser)

	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/authenticate", authenticate.New(s.Authenticate))
	authRouter.Method(
		http.MethodPost,
		"/password-reset",
		sendpasswordresetlink.New(s.SendPasswordResetLink, isTestMode),
	)
	authRouter.Method(
		http.MethodPost,
		"/password-reset/{uid}/{token}",
		resetpassword.New(s.ResetPassword),
	)
	authRouter.Method(http.MethodGet, "/superuser/{username}", checksuperuser.New(s.CheckSuperuser))

	eventsRouter := chi.NewRouter()
	eventsRouter.Use(requireAuth)
	eventsRouter.Method(http.MethodGet, "/", listevents.New(s.ListEvents))
	eventsRouter.Method(http.MethodPost, "/", createevent.New(s.CreateEvent))
	eventsRouter.Method(http.MethodPut, "/{eventID:[0-9]+}", updateevent.New(s.UpdateEvent))
	eventsRouter.Method(http.MethodDelete, "/{eventID:[0-9]+}", deleteevent.New(s.DeleteEvent))
	eventsRouter.Method(http.MethodPost, "/clear", clearevents.New(s.ClearEvents))

	currenciesRouter := chi.NewRouter()
	currenciesRouter.Use(requireAuth)
	currenciesRouter.Method(http.MethodGet, "/", listcurrencies.New(s.ListCurrencies))
	currenciesRouter.Method(http.MethodPost, "/", createcurrency.New(s.CreateCurrency))
	currenciesRouter.Method(http.MethodPut, "/", renamecurrency.New(s.RenameCurrency))
	currenciesRouter.Method(http.MethodDelete, "/", deletecurrency.New(s.DeleteCurrency))

	usersRouter := chi.NewRouter()
	usersRouter.Use(requireAuth)
	usersRouter.Method(http.MethodGet, "/", listusers.New(s.ListUsers))
	usersRouter.Method(http.MethodPost, "/", createuser.New(s.CreateUser))
	usersRouter.Method(http.MethodGet, "/{username}", getuser.New(s.GetUser))
	usersRouter.Method(http.MethodPut, "/", updateuser.New(s.UpdateUser))
	usersRouter.Method(http.MethodDelete, "/", deleteuser.New(s.DeleteUser))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", authRouter)
		api.Mount("/events", eventsRouter)
		api.Mount("/currencies", currenciesRouter)
		api.Mount("/users", usersRouter)
	})

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
