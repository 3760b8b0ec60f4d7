package examples

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-spec/internal"
	"sales-spec/internal/infra"
	"sales-spec/specs"
)

// === EVENT WRAPPER TYPES ===

type DatasetPublishedEvent struct {
	Dataset specs.DatasetSpec
}

func (e DatasetPublishedEvent) EventType() infra.EventType {
	return infra.DatasetPublished
}

type SellerReportComputedEvent struct {
	Reports []specs.SellerReportSpec
}

func (e SellerReportComputedEvent) EventType() infra.EventType {
	return infra.SellerReportComputed
}

type AggregationFailedEvent struct {
	Err error
}

func (e AggregationFailedEvent) EventType() infra.EventType {
	return infra.AggregationFailed
}

// subscribeAggregator wires the aggregation stage onto the bus: every
// published dataset is aggregated with the given config, and the outcome is
// published as either a computed report or a failure.
func subscribeAggregator(bus *infra.Bus, config specs.CalculationConfigSpec) {
	bus.Subscribe(infra.DatasetPublished, func(e infra.Event) {
		published := e.(DatasetPublishedEvent)
		reports, err := internal.Aggregate(published.Dataset, config)
		if err != nil {
			bus.Publish(AggregationFailedEvent{Err: err})
			return
		}
		bus.Publish(SellerReportComputedEvent{Reports: reports})
	})
}

func TestReportFlowOverBus(t *testing.T) {
	config := specs.CalculationConfigSpec{
		CalculateRevenue: internal.DefaultCalculateRevenue,
		CalculateBonus:   internal.DefaultCalculateBonus,
	}

	t.Run("published dataset flows through to a computed report", func(t *testing.T) {
		bus := infra.NewBus()
		subscribeAggregator(bus, config)

		var computed []SellerReportComputedEvent
		bus.Subscribe(infra.SellerReportComputed, func(e infra.Event) {
			computed = append(computed, e.(SellerReportComputedEvent))
		})

		bus.Publish(DatasetPublishedEvent{Dataset: specs.DatasetSpec{
			Sellers: []specs.SellerSpec{
				{ID: "A", FirstName: "Ada", LastName: "Alvarez"},
				{ID: "B", FirstName: "Ben", LastName: "Baker"},
			},
			Products: []specs.ProductSpec{
				{SKU: "X", PurchasePrice: "10"},
			},
			PurchaseRecords: []specs.PurchaseRecordSpec{
				{
					SellerID:    "A",
					TotalAmount: "100",
					Items: []specs.LineItemSpec{
						{SKU: "X", Quantity: 5, SalePrice: "30", DiscountPercent: "0"},
					},
				},
			},
		}})

		require.Len(t, computed, 1)
		reports := computed[0].Reports
		require.Len(t, reports, 2)
		assert.Equal(t, "A", reports[0].SellerID)
		assert.Equal(t, "15.00", reports[0].Bonus)
		assert.Equal(t, "B", reports[1].SellerID)
		assert.Equal(t, "0.00", reports[1].Bonus)
	})

	t.Run("invalid dataset publishes a failure event", func(t *testing.T) {
		bus := infra.NewBus()
		subscribeAggregator(bus, config)

		var failures []AggregationFailedEvent
		bus.Subscribe(infra.AggregationFailed, func(e infra.Event) {
			failures = append(failures, e.(AggregationFailedEvent))
		})
		bus.Subscribe(infra.SellerReportComputed, func(e infra.Event) {
			t.Fatal("no report should be computed for an invalid dataset")
		})

		bus.Publish(DatasetPublishedEvent{Dataset: specs.DatasetSpec{}})

		require.Len(t, failures, 1)
		assert.ErrorIs(t, failures[0].Err, specs.ErrInvalidInput)
	})
}
