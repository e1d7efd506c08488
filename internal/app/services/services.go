package services

import (
	"exchanger/internal/app/deps"
	drl "exchanger/internal/core/domain/rate_limiter"
	"exchanger/internal/core/services"
	authenticate "exchanger/internal/core/services/authenticate"
	checksuperuser "exchanger/internal/core/services/check_superuser"
	clearevents "exchanger/internal/core/services/clear_events"
	createcurrency "exchanger/internal/core/services/create_currency"
	createevent "exchanger/internal/core/services/create_event"
	createuser "exchanger/internal/core/services/create_user"
	deletecurrency "exchanger/internal/core/services/delete_currency"
	deleteevent "exchanger/internal/core/services/delete_event"
	deleteuser "exchanger/internal/core/services/delete_user"
	getuser "exchanger/internal/core/services/get_user"
	listcurrencies "exchanger/internal/core/services/list_currencies"
	listevents "exchanger/internal/core/services/list_events"
	listusers "exchanger/internal/core/services/list_users"
	ratelimiting "exchanger/internal/core/services/rate_limiting"
	renamecurrency "exchanger/internal/core/services/rename_currency"
	resetpassword "exchanger/internal/core/services/reset_password"
	sendpasswordresetlink "exchanger/internal/core/services/send_password_reset_link"
	updateevent "exchanger/internal/core/services/update_event"
	updateuser "exchanger/internal/core/services/update_user"
)

type Services struct {
	Authenticate          services.Service[authenticate.Input, authenticate.Result]
	SendPasswordResetLink services.Service[sendpasswordresetlink.Input, sendpasswordresetlink.Result]
	ResetPassword         services.Service[resetpassword.Input, resetpassword.Result]
	CheckSuperuser        services.Service[checksuperuser.Input, checksuperuser.Result]

	CreateEvent services.Service[createevent.Input, createevent.Result]
	ListEvents  services.Service[listevents.Input, listevents.Result]
	UpdateEvent services.Service[updateevent.Input, updateevent.Result]
	DeleteEvent services.Service[deleteevent.Input, deleteevent.Result]
	ClearEvents services.Service[clearevents.Input, clearevents.Result]

	CreateCurrency services.Service[createcurrency.Input, createcurrency.Result]
	ListCurrencies services.Service[listcurrencies.Input, listcurrencies.Result]
	RenameCurrency services.Service[renamecurrency.Input, renamecurrency.Result]
	DeleteCurrency services.Service[deletecurrency.Input, deletecurrency.Result]

	CreateUser services.Service[createuser.Input, createuser.Result]
	ListUsers  services.Service[listusers.Input, listusers.Result]
	GetUser    services.Service[getuser.Input, getuser.Result]
	UpdateUser services.Service[updateuser.Input, updateuser.Result]
	DeleteUser services.Service[deleteuser.Input, deleteuser.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.Authenticate = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Value: 10, Interval: drl.Hour},
		authenticate.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
			deps.TokenPairIssuer,
		),
	)
	s.SendPasswordResetLink = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Value: 3, Interval: drl.Hour},
		sendpasswordresetlink.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordResetter,
			deps.EmailResetLinkSender,
			deps.SmsResetLinkSender,
			&deps.Config.PasswordResetBaseURL,
		),
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordResetter,
		deps.PasswordHasher,
	)
	s.CheckSuperuser = checksuperuser.New(deps.Logger, deps.UserRepository)

	s.CreateEvent = createevent.New(deps.Logger, deps.EventRepository)
	s.ListEvents = listevents.New(deps.Logger, deps.EventRepository)
	s.UpdateEvent = updateevent.New(deps.Logger, deps.EventRepository)
	s.DeleteEvent = deleteevent.New(deps.Logger, deps.EventRepository)
	s.ClearEvents = clearevents.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.EventRepository,
	)

	s.CreateCurrency = createcurrency.New(deps.Logger, deps.CurrencyRepository)
	s.ListCurrencies = listcurrencies.New(deps.Logger, deps.CurrencyRepository)
	s.RenameCurrency = renamecurrency.New(deps.Logger, deps.CurrencyRepository)
	s.DeleteCurrency = deletecurrency.New(deps.Logger, deps.CurrencyRepository)

	s.CreateUser = createuser.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.Now,
	)
	s.ListUsers = listusers.New(deps.Logger, deps.UserRepository)
	s.GetUser = getuser.New(deps.Logger, deps.UserRepository)
	s.UpdateUser = updateuser.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
	)
	s.DeleteUser = deleteuser.New(deps.Logger, deps.UserRepository)

	return s
}
