package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/QuestCraft_Go/internal/daily"
	"github.com/osse101/QuestCraft_Go/internal/domain"
	"github.com/osse101/QuestCraft_Go/internal/event"
	"github.com/osse101/QuestCraft_Go/internal/logger"
	"github.com/osse101/QuestCraft_Go/internal/milestone"
	"github.com/osse101/QuestCraft_Go/internal/quest"
	"github.com/osse101/QuestCraft_Go/internal/reward"
	"github.com/osse101/QuestCraft_Go/internal/shop"
	"github.com/osse101/QuestCraft_Go/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2 --name=Service --inpackage --filename=mock_service.go --structname=MockService --with-expecter=false

// Service is the action surface of the game
type Service interface {
	State(ctx context.Context) (*domain.AppState, error)
	Summary(ctx context.Context) (*domain.Summary, error)

	AddQuest(ctx context.Context, name string, difficulty, durationMinutes int) (domain.Quest, error)
	StartQuest(ctx context.Context, index int) (domain.Quest, error)
	CancelQuest(ctx context.Context, index int) (domain.Quest, error)
	CompleteQuest(ctx context.Context, index int) (*CompletionOutcome, error)
	Quests(ctx context.Context) ([]domain.QuestProgress, error)
	QuestProgress(ctx context.Context, index int) (domain.QuestProgress, error)

	DailyQuests(ctx context.Context) (*DailyView, error)
	CompleteDaily(ctx context.Context, name string) (*CompletionOutcome, error)

	ShopItems(ctx context.Context) (*ShopView, error)
	BuyItem(ctx context.Context, itemID string) (*shop.PurchaseResult, error)

	History(ctx context.Context) ([]domain.HistoryEntry, error)
	ClearHistory(ctx context.Context) error
	Reset(ctx context.Context) error
}

// CompletionOutcome is returned for every credited completion
type CompletionOutcome struct {
	Name           string              `json:"name"`
	Reward         int                 `json:"reward"`
	Balance        int                 `json:"balance"`
	CompletedCount int                 `json:"completedCount"`
	Entry          domain.HistoryEntry `json:"entry"`
	Notices        []milestone.Notice  `json:"notices,omitempty"`
}

// DailyView is today's selection with its counters
type DailyView struct {
	domain.DailySelection
	Remaining int `json:"remaining"`
}

// ShopView lists the unlocked items
type ShopView struct {
	Balance        int               `json:"balance"`
	CompletedCount int               `json:"completedCount"`
	Items          []domain.ShopItem `json:"items"`
	NextTierAt     *int              `json:"nextTierAt,omitempty"`
}

// Deps holds the collaborators of the service
type Deps struct {
	Gateway  *storage.Gateway
	Selector *daily.Selector
	Catalog  *shop.Catalog
	Notifier *milestone.Notifier
	Bus      event.Bus        // optional
	Clock    func() time.Time // defaults to UTC wall clock
	Location *time.Location   // calendar day boundary, defaults to UTC
}

type service struct {
	mu    sync.Mutex
	state *domain.AppState
	daily *domain.DailySelection // quests and date; counters live in state

	gateway  *storage.Gateway
	ledger   *quest.Ledger
	selector *daily.Selector
	catalog  *shop.Catalog
	notifier *milestone.Notifier
	bus      event.Bus
	now      func() time.Time
	loc      *time.Location
}

// txn is a pending change to a cloned state
type txn struct {
	state  *domain.AppState
	daily  *domain.DailySelection
	events []event.Event
	dirty  bool
}

func (tx *txn) emit(evts ...event.Event) {
	tx.events = append(tx.events, evts...)
}

// NewService loads the saved state and returns a ready service
func NewService(ctx context.Context, deps Deps) (Service, error) {
	if deps.Gateway == nil || deps.Selector == nil || deps.Catalog == nil || deps.Notifier == nil {
		return nil, errors.New(ErrMsgMissingDep)
	}

	now := deps.Clock
	if now == nil {
		now = func() time.Time { return time.Now().UTC().Round(0) }
	}
	loc := deps.Location
	if loc == nil {
		loc = time.UTC
	}

	st, err := deps.Gateway.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadStateFmt, err)
	}
	sel, err := deps.Gateway.LoadDaily(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadDailyFmt, err)
	}

	s := &service{
		state:    st,
		daily:    sel,
		gateway:  deps.Gateway,
		ledger:   quest.NewLedger(now),
		selector: deps.Selector,
		catalog:  deps.Catalog,
		notifier: deps.Notifier,
		bus:      deps.Bus,
		now:      now,
		loc:      loc,
	}

	logger.FromContext(ctx).Info(LogMsgServiceReady,
		"points", st.Points,
		"quests", len(st.Quests),
		"completed", reward.CountCompletions(st.History))
	return s, nil
}

// apply runs fn against a clone of the state.
// Nothing is written and the live state is untouched unless fn succeeds.
// A newly drawn selection is stored before the state; if the state save then fails the previous selection is put back.
func (s *service) apply(ctx context.Context, dirty bool, fn func(tx *txn) error) error {
	s.mu.Lock()

	tx := &txn{state: s.state.Clone(), dirty: dirty}
	if err := fn(tx); err != nil {
		s.mu.Unlock()
		return err
	}

	if tx.daily != nil {
		if err := s.gateway.SaveDaily(ctx, *tx.daily); err != nil {
			s.mu.Unlock()
			return fmt.Errorf(ErrMsgSaveDailyFmt, err)
		}
	}
	if tx.dirty {
		if err := s.gateway.Save(ctx, tx.state); err != nil {
			if tx.daily != nil {
				s.restoreDaily(ctx)
			}
			s.mu.Unlock()
			return fmt.Errorf(ErrMsgSaveStateFmt, err)
		}
		s.state = tx.state
	}
	if tx.daily != nil {
		s.daily = tx.daily
		logger.FromContext(ctx).Info(LogMsgDailyRolled, "date", tx.daily.Date)
	}
	s.mu.Unlock()

	s.publish(ctx, tx.events)
	return nil
}

// restoreDaily puts the committed selection back in the store
func (s *service) restoreDaily(ctx context.Context) {
	var err error
	if s.daily == nil {
		err = s.gateway.ClearDaily(ctx)
	} else {
		err = s.gateway.SaveDaily(ctx, *s.daily)
	}
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgDailyRestoreFailed, "error", err)
	}
}

func (s *service) mutate(ctx context.Context, fn func(tx *txn) error) error {
	return s.apply(ctx, true, fn)
}

// read holds the lock for fn without saving; fn must not modify s.state
func (s *service) read(fn func(st *domain.AppState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

func (s *service) publish(ctx context.Context, evts []event.Event) {
	if s.bus == nil {
		return
	}
	for _, e := range evts {
		if err := s.bus.Publish(ctx, e); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", e.Type, "error", err)
		}
	}
}

// State returns a copy of the whole state
func (s *service) State(ctx context.Context) (*domain.AppState, error) {
	var out *domain.AppState
	err := s.apply(ctx, false, func(tx *txn) error {
		s.prepareDaily(tx)
		out = tx.state.Clone()
		return nil
	})
	return out, err
}

// Summary reports the headline numbers
func (s *service) Summary(ctx context.Context) (*domain.Summary, error) {
	var out *domain.Summary
	err := s.apply(ctx, false, func(tx *txn) error {
		s.prepareDaily(tx)

		st := tx.state
		count := reward.CountCompletions(st.History)
		out = &domain.Summary{
			Points:         st.Points,
			CompletedCount: count,
			DailyCount:     st.DailyCount,
			QuestCount:     len(st.Quests),
		}
		if next, ok := s.catalog.NextThreshold(count); ok {
			out.NextTierAt = &next
		}
		if st.ActiveQuest != nil {
			idx := *st.ActiveQuest
			out.ActiveQuest = &idx
			out.ActiveName = st.Quests[idx].Name
		}
		return nil
	})
	return out, err
}

// AddQuest appends a new unstarted quest
func (s *service) AddQuest(ctx context.Context, name string, difficulty, durationMinutes int) (domain.Quest, error) {
	var q domain.Quest
	err := s.mutate(ctx, func(tx *txn) error {
		var err error
		q, err = s.ledger.Add(tx.state, name, difficulty, durationMinutes)
		if err != nil {
			return err
		}
		tx.emit(event.NewQuestAddedEvent(q, s.now()))
		return nil
	})
	if err != nil {
		return domain.Quest{}, err
	}

	logger.FromContext(ctx).Info(LogMsgQuestAdded, "quest_id", q.ID, "name", q.Name, "difficulty", q.Difficulty)
	return q, nil
}

// StartQuest starts the timer of the quest at index
func (s *service) StartQuest(ctx context.Context, index int) (domain.Quest, error) {
	var q domain.Quest
	err := s.mutate(ctx, func(tx *txn) error {
		started, entry, err := s.ledger.Start(tx.state, index)
		if err != nil {
			return err
		}
		q = started
		reward.NewAccount(tx.state).ApplyDelta(0, entry)
		tx.emit(event.NewQuestStartedEvent(q, entry.At))
		return nil
	})
	if err != nil {
		return domain.Quest{}, err
	}

	logger.FromContext(ctx).Info(LogMsgQuestStarted, "quest_id", q.ID, "index", index)
	return q, nil
}

// CancelQuest removes the quest at index without reward
func (s *service) CancelQuest(ctx context.Context, index int) (domain.Quest, error) {
	var q domain.Quest
	err := s.mutate(ctx, func(tx *txn) error {
		removed, entry, err := s.ledger.Cancel(tx.state, index)
		if err != nil {
			return err
		}
		q = removed
		reward.NewAccount(tx.state).ApplyDelta(0, entry)
		tx.emit(event.NewQuestCancelledEvent(q, entry.At))
		return nil
	})
	if err != nil {
		return domain.Quest{}, err
	}

	logger.FromContext(ctx).Info(LogMsgQuestCancelled, "quest_id", q.ID, "index", index)
	return q, nil
}

// CompleteQuest validates the quest at index and credits its reward
func (s *service) CompleteQuest(ctx context.Context, index int) (*CompletionOutcome, error) {
	var out *CompletionOutcome
	err := s.mutate(ctx, func(tx *txn) error {
		res, err := s.ledger.Complete(tx.state, index)
		if err != nil {
			return err
		}

		out = s.credit(tx, res.Quest.Name, res.Reward, res.Entry)
		tx.emit(event.NewQuestCompletedEvent(res.Quest, res.Reward, res.Entry.At))
		s.emitNotices(tx, out.Notices)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logCompletion(ctx, LogMsgQuestCompleted, logKindTimed, out)
	return out, nil
}

// Quests projects the progress of every quest at the current time
func (s *service) Quests(ctx context.Context) ([]domain.QuestProgress, error) {
	var out []domain.QuestProgress
	s.read(func(st *domain.AppState) {
		now := s.now()
		out = make([]domain.QuestProgress, len(st.Quests))
		for i, q := range st.Quests {
			p := quest.ProjectProgress(q, now)
			p.Index = i
			out[i] = p
		}
	})
	return out, nil
}

// QuestProgress projects a single quest
func (s *service) QuestProgress(ctx context.Context, index int) (domain.QuestProgress, error) {
	var (
		out domain.QuestProgress
		err error
	)
	s.read(func(st *domain.AppState) {
		if index < 0 || index >= len(st.Quests) {
			err = fmt.Errorf(quest.ErrMsgQuestIndexFmt, domain.ErrQuestNotFound, index, len(st.Quests))
			return
		}
		out = quest.ProjectProgress(st.Quests[index], s.now())
		out.Index = index
	})
	return out, err
}

// DailyQuests returns today's selection, drawing a new one on a new day
func (s *service) DailyQuests(ctx context.Context) (*DailyView, error) {
	var out *DailyView
	err := s.apply(ctx, false, func(tx *txn) error {
		sel := s.prepareDaily(tx)
		out = &DailyView{
			DailySelection: sel,
			Remaining:      max(domain.DailyQuestsPerDay-sel.CompletedToday, 0),
		}
		return nil
	})
	return out, err
}

// CompleteDaily checks the named daily quest and credits its reward
func (s *service) CompleteDaily(ctx context.Context, name string) (*CompletionOutcome, error) {
	var out *CompletionOutcome
	err := s.mutate(ctx, func(tx *txn) error {
		sel := s.prepareDaily(tx)

		now := s.now()
		amount, entry, err := daily.Complete(&sel, name, now)
		if err != nil {
			return err
		}
		tx.state.DailyCount = sel.CompletedToday
		tx.state.DailyCompleted = sel.Completed

		out = s.credit(tx, name, amount, entry)
		tx.emit(event.NewDailyCompletedEvent(name, amount, sel.CompletedToday, now))
		s.emitNotices(tx, out.Notices)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logCompletion(ctx, LogMsgDailyCompleted, logKindDaily, out)
	return out, nil
}

// ShopItems lists the items unlocked by the completed count
func (s *service) ShopItems(ctx context.Context) (*ShopView, error) {
	var out *ShopView
	s.read(func(st *domain.AppState) {
		count := reward.CountCompletions(st.History)
		out = &ShopView{
			Balance:        st.Points,
			CompletedCount: count,
			Items:          s.catalog.AvailableItems(count),
		}
		if next, ok := s.catalog.NextThreshold(count); ok {
			out.NextTierAt = &next
		}
	})
	return out, nil
}

// BuyItem spends the catalog cost of the item
func (s *service) BuyItem(ctx context.Context, itemID string) (*shop.PurchaseResult, error) {
	var out *shop.PurchaseResult
	err := s.mutate(ctx, func(tx *txn) error {
		acct := reward.NewAccount(tx.state)
		res, err := s.catalog.Purchase(acct, itemID, acct.CompletedCount(), s.now())
		if err != nil {
			return err
		}
		out = res

		tx.emit(event.NewItemPurchasedEvent(res.Item, res.Balance, res.Entry.At))
		if res.GameCompleted {
			tx.emit(event.NewGameCompletedEvent(res.Item, res.Balance, res.Entry.At))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgItemPurchased, "item", out.Item.ID, "cost", out.Item.Cost, "balance", out.Balance)
	if out.GameCompleted {
		log.Info(LogMsgGameCompleted, "item", out.Item.ID)
	}
	return out, nil
}

// History returns a copy of the log, oldest first
func (s *service) History(ctx context.Context) ([]domain.HistoryEntry, error) {
	var out []domain.HistoryEntry
	s.read(func(st *domain.AppState) {
		out = reward.NewAccount(st).History()
	})
	return out, nil
}

// ClearHistory empties the log; points and quests are kept
func (s *service) ClearHistory(ctx context.Context) error {
	var cleared int
	err := s.mutate(ctx, func(tx *txn) error {
		acct := reward.NewAccount(tx.state)
		cleared = len(acct.History())
		acct.ClearHistory()
		tx.emit(event.NewHistoryClearedEvent(cleared))
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgHistoryCleared, "entries", cleared)
	return nil
}

// Reset returns to the empty state; today's daily selection is kept
func (s *service) Reset(ctx context.Context) error {
	s.mu.Lock()
	st := domain.NewAppState()
	if err := s.gateway.Save(ctx, st); err != nil {
		s.mu.Unlock()
		return fmt.Errorf(ErrMsgSaveStateFmt, err)
	}
	s.state = st
	s.mu.Unlock()

	s.publish(ctx, []event.Event{event.NewStateResetEvent()})
	logger.FromContext(ctx).Info(LogMsgStateReset)
	return nil
}

// prepareDaily returns today's selection with the counters from tx.state.
// On a new calendar day it draws new quests into tx and resets the counters; apply stores them.
func (s *service) prepareDaily(tx *txn) domain.DailySelection {
	today := daily.Today(s.now(), s.loc)
	sel, isNew := s.selector.Select(s.daily, today)

	if isNew {
		tx.state.DailyCount = 0
		tx.state.DailyCompleted = []string{}
		tx.dirty = true
		tx.emit(event.NewDailyRolledEvent(sel))

		stored := domain.DailySelection{Date: sel.Date, Quests: sel.Quests}
		tx.daily = &stored
	}

	completed := make([]string, len(tx.state.DailyCompleted))
	copy(completed, tx.state.DailyCompleted)
	sel.CompletedToday = tx.state.DailyCount
	sel.Completed = completed
	return sel
}

// credit applies a completion reward and checks milestones on the new count
func (s *service) credit(tx *txn, name string, amount int, entry domain.HistoryEntry) *CompletionOutcome {
	acct := reward.NewAccount(tx.state)
	acct.ApplyDelta(amount, entry)

	count := acct.CompletedCount()
	return &CompletionOutcome{
		Name:           name,
		Reward:         amount,
		Balance:        acct.Balance(),
		CompletedCount: count,
		Entry:          entry,
		Notices:        s.notifier.Check(count),
	}
}

func (s *service) emitNotices(tx *txn, notices []milestone.Notice) {
	for _, n := range notices {
		tx.emit(event.NewMilestoneEvent(n.Threshold, string(n.Kind), n.Message))
	}
}

func (s *service) logCompletion(ctx context.Context, msg, kind string, out *CompletionOutcome) {
	log := logger.FromContext(ctx)
	log.Info(msg,
		"kind", kind,
		"name", out.Name,
		"reward", out.Reward,
		"balance", out.Balance,
		"completed", out.CompletedCount)
	for _, n := range out.Notices {
		log.Info(LogMsgMilestone, "threshold", n.Threshold, "kind", n.Kind)
	}
}
