package risk

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/siga-angola/envrisk-cli/internal/model"
)

func TestEventLog(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	t.Run("drought within window", func(t *testing.T) {
		log := NewEventLog()
		log.RecordDrought(model.DroughtEvent{Region: "CUNENE", Date: now.AddDate(-1, 0, 0)})

		assert.True(t, log.droughtWithin(now, 2))
		assert.False(t, log.droughtWithin(now.AddDate(4, 0, 0), 2))
	})

	t.Run("old events ignored", func(t *testing.T) {
		log := NewEventLog()
		log.RecordDrought(model.DroughtEvent{Region: "NAMIBE", Date: now.AddDate(-3, 0, 0)})

		assert.False(t, log.droughtWithin(now, 2))
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		log := NewEventLog()
		log.RecordDrought(model.DroughtEvent{Region: "HUILA", Date: now})

		snap := log.Snapshot()
		snap[0].Region = "mutated"
		assert.Equal(t, "HUILA", log.Snapshot()[0].Region)
	})

	t.Run("scoring does not mutate the log", func(t *testing.T) {
		log := NewEventLog()
		log.RecordDrought(model.DroughtEvent{Region: "CUNENE", Date: now.AddDate(0, -6, 0)})
		e := NewEngine(log, WithClock(func() time.Time { return now }))

		m := &model.DroughtMetrics{DroughtIndex: 30, NDVI: 0.6, VegetationHealth: model.VegetationGood}
		for i := 0; i < 5; i++ {
			e.DroughtRisk(m, nil)
		}
		assert.Len(t, log.Snapshot(), 1)
	})

	t.Run("concurrent record and read", func(t *testing.T) {
		log := NewEventLog()
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(2)
			go func(i int) {
				defer wg.Done()
				log.RecordDrought(model.DroughtEvent{Region: "BIE", Date: now.AddDate(0, 0, -i)})
			}(i)
			go func() {
				defer wg.Done()
				_ = log.droughtWithin(now, 2)
			}()
		}
		wg.Wait()
		assert.Len(t, log.Snapshot(), 20)
	})
}
