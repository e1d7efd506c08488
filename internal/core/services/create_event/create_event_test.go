package createevent

import (
	"context"
	"exchanger/internal/core/domain/event"
	"exchanger/internal/core/domain/logging"
	"exchanger/internal/core/services"
	"testing"

	"github.com/stretchr/testify/require"
)

type suite struct {
	log       *logging.FakeLogger
	eventRepo *event.FakeEventRepository
}

func setupSuite(t *testing.T) *suite {
	return &suite{
		log:       logging.NewFakeLogger(),
		eventRepo: event.NewFakeEventRepository(),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.eventRepo)
}

func TestCreateEvent(t *testing.T) {
	cases := []struct {
		id            string
		amount        float64
		rate          float64
		expectedTotal float64
	}{
		{"whole", 100, 2, 200},
		{"fractional rate", 100, 0.25, 25},
		{"rounds up", 7.5, 1.333, 10},
		{"rounds down", 3.33, 3.0001, 9.99},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			suite := setupSuite(t)
			service := suite.createService()

			result, err := service.Run(context.Background(), Input{
				Type:     "buy",
				Currency: "USD",
				Amount:   testcase.amount,
				Date:     "15.03",
				Rate:     testcase.rate,
			})

			require.NoError(t, err)
			require.Equal(t, testcase.expectedTotal, result.Event.Total)
			require.Equal(t, "15.03", result.Event.Date)
			require.Len(t, suite.eventRepo.Events, 1)
		})
	}
}

func TestInvalidDate(t *testing.T) {
	for _, date := range []string{"", "2023-03-15", "99.99", "15,03"} {
		t.Run(date, func(t *testing.T) {
			suite := setupSuite(t)
			service := suite.createService()

			_, err := service.Run(context.Background(), Input{
				Type:     "buy",
				Currency: "USD",
				Amount:   100,
				Date:     date,
				Rate:     2,
			})

			require.ErrorIs(t, err, event.ErrInvalidEventDate)
			require.Empty(t, suite.eventRepo.Events)
		})
	}
}
