package components

import (
	"loca-api/internal/pkg/clock"
	"loca-api/internal/pkg/config"
	"loca-api/internal/usecase/commands"
	"loca-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewTransactionCommands,
		commands.NewAvailabilityCommands,
		commands.NewListingCommands,
		commands.NewConversationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewAvailabilityQueries,
		queries.NewConversationQueries,
		queries.NewListingQueries,
		NewRevenueQueries,
	),
)

func NewRevenueQueries(store queries.RevenueReadStore, billing config.BillingConfig) queries.RevenueQueries {
	return queries.NewRevenueQueries(store, billing.CommissionPerNight)
}
