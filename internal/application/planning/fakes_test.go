package planning

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
	"github.com/jhoicas/invorya-planning/internal/domain/entity"
	"github.com/jhoicas/invorya-planning/internal/domain/forecast"
)

// ── Fixtures comunes ─────────────────────────────────────────────────────────

const testCompany = "company-1"

var (
	testNow   = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	errDB     = errors.New("conexión perdida")
	nopLogger = zerolog.Nop()
)

func fixedClock() time.Time { return testNow }

// daily serie diaria que termina ayer.
func daily(values ...int) []forecast.DemandPoint {
	start := testNow.AddDate(0, 0, -len(values))
	out := make([]forecast.DemandPoint, len(values))
	for i, v := range values {
		out[i] = forecast.DemandPoint{Date: time.Date(start.Year(), start.Month(), start.Day()+i, 0, 0, 0, 0, time.UTC), Quantity: v}
	}
	return out
}

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// alternating serie 3,7,3,7... de media 5 y desviación 2.
func alternating(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = 3
		if i%2 == 1 {
			out[i] = 7
		}
	}
	return out
}

func ptrTime(t time.Time) *time.Time { return &t }

// ── Fakes de repositorio ─────────────────────────────────────────────────────

type fakeLocations struct {
	list []*entity.Location
	err  error
}

func (f *fakeLocations) GetByID(_ context.Context, companyID, id string) (*entity.Location, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, l := range f.list {
		if l.ID == id && l.CompanyID == companyID {
			c := *l
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeLocations) ListByCompany(_ context.Context, companyID, locationType string) ([]*entity.Location, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Location
	for _, l := range f.list {
		if l.CompanyID == companyID && (locationType == "" || l.Type == locationType) {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeItems struct {
	list []*entity.InventoryItem
	err  error
}

func (f *fakeItems) Get(_ context.Context, companyID, productID, locationID string) (*entity.InventoryItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, it := range f.list {
		if it.CompanyID == companyID && it.ProductID == productID && it.LocationID == locationID {
			c := *it
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeItems) ListByLocation(_ context.Context, companyID, locationID string) ([]*entity.InventoryItem, error) {
	return f.filter(func(it *entity.InventoryItem) bool {
		return it.CompanyID == companyID && it.LocationID == locationID
	})
}

func (f *fakeItems) ListByProduct(_ context.Context, companyID, productID string) ([]*entity.InventoryItem, error) {
	return f.filter(func(it *entity.InventoryItem) bool {
		return it.CompanyID == companyID && it.ProductID == productID
	})
}

func (f *fakeItems) filter(keep func(*entity.InventoryItem) bool) ([]*entity.InventoryItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.InventoryItem
	for _, it := range f.list {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

// fakeSales series por producto y ubicación.
type fakeSales struct {
	series map[string]map[string][]forecast.DemandPoint
	err    error
	calls  atomic.Int32
}

func newFakeSales() *fakeSales {
	return &fakeSales{series: make(map[string]map[string][]forecast.DemandPoint)}
}

func (f *fakeSales) add(productID, locationID string, values ...int) *fakeSales {
	if f.series[productID] == nil {
		f.series[productID] = make(map[string][]forecast.DemandPoint)
	}
	f.series[productID][locationID] = daily(values...)
	return f
}

func (f *fakeSales) DailyDemand(_ context.Context, _, productID, locationID string, _ time.Time) ([]forecast.DemandPoint, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.series[productID][locationID], nil
}

func (f *fakeSales) DailyDemandByLocation(_ context.Context, _, productID string, _ time.Time) (map[string][]forecast.DemandPoint, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string][]forecast.DemandPoint)
	for loc, s := range f.series[productID] {
		out[loc] = s
	}
	return out, nil
}

func (f *fakeSales) DailyDemandByProduct(_ context.Context, _, locationID string, _ time.Time) (map[string][]forecast.DemandPoint, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string][]forecast.DemandPoint)
	for product, byLoc := range f.series {
		if s, ok := byLoc[locationID]; ok {
			out[product] = s
		}
	}
	return out, nil
}

type fakeProducts struct {
	list []*entity.Product
}

func (f *fakeProducts) GetByID(_ context.Context, companyID, id string) (*entity.Product, error) {
	for _, p := range f.list {
		if p.ID == id && p.CompanyID == companyID {
			return p, nil
		}
	}
	return nil, nil
}

// memCache caché en memoria con errores inyectables.
type memCache struct {
	mu     sync.Mutex
	data   map[string][]byte
	getErr error
	setErr error
	ttl    time.Duration
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = value
	c.ttl = ttl
	return nil
}

func (c *memCache) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.data))
	for k := range c.data {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type fakeRenderer struct {
	location *entity.Location
	report   *dto.ReorderListResponse
	out      []byte
	err      error
}

func (r *fakeRenderer) RenderReorderReport(_ context.Context, location *entity.Location, report *dto.ReorderListResponse, _ time.Time) ([]byte, error) {
	r.location = location
	r.report = report
	return r.out, r.err
}

// ── Ubicaciones e inventario de prueba ───────────────────────────────────────

func testLocations() *fakeLocations {
	return &fakeLocations{list: []*entity.Location{
		{ID: "tienda-norte", CompanyID: testCompany, Name: "Tienda Norte", Type: entity.LocationTypeStore},
		{ID: "tienda-sur", CompanyID: testCompany, Name: "Tienda Sur", Type: entity.LocationTypeStore},
		{ID: "bodega", CompanyID: testCompany, Name: "Bodega Central", Type: entity.LocationTypeWarehouse},
	}}
}
