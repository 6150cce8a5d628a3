package domain

import (
	"context"
	"sort"
	"time"

	"github.com/Remoratrader/nutria-app/internal/nutrition"
)

type mockRepo struct {
	profiles    map[string]UserProfile
	menu        []MenuEntry
	favorites   map[string][]string
	consumption []ConsumptionEntry
	hydration   map[string]HydrationDay
	err         error
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		profiles:  make(map[string]UserProfile),
		favorites: make(map[string][]string),
		hydration: make(map[string]HydrationDay),
	}
}

func (m *mockRepo) GetProfile(_ context.Context, userID string) (*UserProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *mockRepo) SaveProfile(_ context.Context, p UserProfile) error {
	if m.err != nil {
		return m.err
	}
	m.profiles[p.UserID] = p
	return nil
}

func (m *mockRepo) ListMenu(_ context.Context, userID string, from, to time.Time) ([]MenuEntry, error) {
	var out []MenuEntry
	for _, e := range m.menu {
		if e.UserID == userID && !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out, m.err
}

func (m *mockRepo) AddMenuEntry(_ context.Context, e MenuEntry) error {
	if m.err != nil {
		return m.err
	}
	m.menu = append(m.menu, e)
	return nil
}

func (m *mockRepo) RemoveMenuEntry(_ context.Context, userID, entryID string, _ time.Time) (bool, error) {
	for i, e := range m.menu {
		if e.ID == entryID && e.UserID == userID {
			m.menu = append(m.menu[:i], m.menu[i+1:]...)
			return true, nil
		}
	}
	return false, m.err
}

func (m *mockRepo) ListFavorites(_ context.Context, userID string) ([]string, error) {
	return m.favorites[userID], m.err
}

func (m *mockRepo) ToggleFavorite(_ context.Context, userID, recipeID string, _ time.Time) (bool, error) {
	ids := m.favorites[userID]
	for i, id := range ids {
		if id == recipeID {
			m.favorites[userID] = append(ids[:i], ids[i+1:]...)
			return false, nil
		}
	}
	m.favorites[userID] = append(ids, recipeID)
	return true, nil
}

func (m *mockRepo) LogConsumption(_ context.Context, e ConsumptionEntry) error {
	if m.err != nil {
		return m.err
	}
	m.consumption = append(m.consumption, e)
	return nil
}

func (m *mockRepo) ListConsumption(_ context.Context, userID string, day time.Time) ([]ConsumptionEntry, error) {
	var out []ConsumptionEntry
	for _, e := range m.consumption {
		if e.UserID == userID && e.Date.Equal(day) {
			out = append(out, e)
		}
	}
	return out, m.err
}

func (m *mockRepo) DailyTotals(_ context.Context, userID string, from, to time.Time) ([]DailyTotals, error) {
	sums := make(map[time.Time]nutrition.Intake)
	for _, e := range m.consumption {
		if e.UserID == userID && !e.Date.Before(from) && !e.Date.After(to) {
			sums[e.Date] = sums[e.Date].Add(e.Intake)
		}
	}
	out := make([]DailyTotals, 0, len(sums))
	for d, in := range sums {
		out = append(out, DailyTotals{Date: d, Intake: in})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, m.err
}

func (m *mockRepo) GetHydration(_ context.Context, userID string, day time.Time) (*HydrationDay, error) {
	h, ok := m.hydration[userID+day.Format(dayKey)]
	if !ok {
		return nil, m.err
	}
	return &h, m.err
}

func (m *mockRepo) AdjustHydration(_ context.Context, userID string, day time.Time, delta int, defaults HydrationDay) (HydrationDay, error) {
	key := userID + day.Format(dayKey)
	h, ok := m.hydration[key]
	if !ok {
		h = defaults
	}
	h.Cups = nutrition.AdjustCups(h.Cups, delta)
	m.hydration[key] = h
	return h, m.err
}
