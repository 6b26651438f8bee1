package components

import (
	"loca-api/internal/handler"
	"loca-api/internal/handler/api"
	"loca-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewAvailabilityHandler,
		api.NewTransactionHandler,
		api.NewDashboardHandler,
		api.NewListingHandler,
		api.NewConversationHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	reservation *api.ReservationHandler,
	availability *api.AvailabilityHandler,
	transaction *api.TransactionHandler,
	dashboard *api.DashboardHandler,
	listing *api.ListingHandler,
	conversation *api.ConversationHandler,
) handler.Handlers {
	return handler.Handlers{
		Reservation:  reservation,
		Availability: availability,
		Transaction:  transaction,
		Dashboard:    dashboard,
		Listing:      listing,
		Conversation: conversation,
	}
}
