package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobverse/jobverse-api/internal/domain"
	"github.com/jobverse/jobverse-api/internal/store"
)

// checkID validates a hex identifier the way the real stores do.
func checkID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return store.ErrInvalidID
	}
	return nil
}

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	InsertFn     func(ctx context.Context, user *domain.User) error
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	ListFn       func(ctx context.Context) ([]domain.User, error)

	// Users backs the default in-memory implementation, keyed by email.
	Users map[string]*domain.User
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a mock user store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{Users: make(map[string]*domain.User)}
}

func (m *MockUserStore) Insert(ctx context.Context, user *domain.User) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, user)
	}
	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	m.Users[user.Email] = user
	return nil
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	user, ok := m.Users[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	users := []domain.User{}
	for _, u := range m.Users {
		users = append(users, *u)
	}
	return users, nil
}

func (m *MockUserStore) EnsureIndexes(ctx context.Context) error {
	return nil
}

// MockJobStore implements store.JobStore for testing
type MockJobStore struct {
	InsertFn              func(ctx context.Context, job *domain.Job) error
	GetByIDFn             func(ctx context.Context, id string) (*domain.Job, error)
	UpdateFn              func(ctx context.Context, id string, patch map[string]interface{}) (int64, error)
	DeleteFn              func(ctx context.Context, id string) (int64, error)
	IncrementApplicantsFn func(ctx context.Context, id string, delta int) error

	// Jobs backs the default in-memory implementation, keyed by hex id.
	Jobs map[string]*domain.Job
}

var _ store.JobStore = (*MockJobStore)(nil)

// NewMockJobStore creates a mock job store with initialized defaults.
func NewMockJobStore() *MockJobStore {
	return &MockJobStore{Jobs: make(map[string]*domain.Job)}
}

func (m *MockJobStore) Insert(ctx context.Context, job *domain.Job) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, job)
	}
	if job.ID.IsZero() {
		job.ID = primitive.NewObjectID()
	}
	m.Jobs[job.ID.Hex()] = job
	return nil
}

func (m *MockJobStore) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if err := checkID(id); err != nil {
		return nil, err
	}
	job, ok := m.Jobs[id]
	if !ok {
		return nil, store.ErrJobNotFound
	}
	return job, nil
}

func (m *MockJobStore) List(ctx context.Context) ([]domain.Job, error) {
	jobs := []domain.Job{}
	for _, j := range m.Jobs {
		jobs = append(jobs, *j)
	}
	return jobs, nil
}

func (m *MockJobStore) ListByRecruiter(ctx context.Context, email string) ([]domain.Job, error) {
	jobs := []domain.Job{}
	for _, j := range m.Jobs {
		if j.RecruiterEmail == email {
			jobs = append(jobs, *j)
		}
	}
	return jobs, nil
}

func (m *MockJobStore) Update(ctx context.Context, id string, patch map[string]interface{}) (int64, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	if err := checkID(id); err != nil {
		return 0, err
	}
	job, ok := m.Jobs[id]
	if !ok {
		return 0, nil
	}
	// Patch only the fields handler tests exercise.
	if title, ok := patch["title"].(string); ok {
		job.Title = title
	}
	if description, ok := patch["description"].(string); ok {
		job.Description = description
	}
	return 1, nil
}

func (m *MockJobStore) Delete(ctx context.Context, id string) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if err := checkID(id); err != nil {
		return 0, err
	}
	if _, ok := m.Jobs[id]; !ok {
		return 0, nil
	}
	delete(m.Jobs, id)
	return 1, nil
}

func (m *MockJobStore) IncrementApplicants(ctx context.Context, id string, delta int) error {
	if m.IncrementApplicantsFn != nil {
		return m.IncrementApplicantsFn(ctx, id, delta)
	}
	if err := checkID(id); err != nil {
		return err
	}
	job, ok := m.Jobs[id]
	if !ok {
		return store.ErrJobNotFound
	}
	job.Applicants += delta
	return nil
}

// MockJobApplicationStore implements store.JobApplicationStore for testing
type MockJobApplicationStore struct {
	InsertFn func(ctx context.Context, application *domain.JobApplication) error

	Applications []*domain.JobApplication
}

var _ store.JobApplicationStore = (*MockJobApplicationStore)(nil)

func (m *MockJobApplicationStore) Insert(ctx context.Context, application *domain.JobApplication) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, application)
	}
	if application.ID.IsZero() {
		application.ID = primitive.NewObjectID()
	}
	m.Applications = append(m.Applications, application)
	return nil
}

func (m *MockJobApplicationStore) ListByApplicant(ctx context.Context, email string) ([]domain.JobApplication, error) {
	applications := []domain.JobApplication{}
	for _, a := range m.Applications {
		if a.ApplicantEmail == email {
			applications = append(applications, *a)
		}
	}
	return applications, nil
}

// MockDiagnosticTestStore implements store.DiagnosticTestStore for testing
type MockDiagnosticTestStore struct {
	AdjustCountersFn func(ctx context.Context, id string, slotsDelta, reservationsDelta int) error

	// Tests backs the default in-memory implementation, keyed by hex id.
	Tests map[string]*domain.DiagnosticTest
}

var _ store.DiagnosticTestStore = (*MockDiagnosticTestStore)(nil)

// NewMockDiagnosticTestStore creates a mock test store with initialized defaults.
func NewMockDiagnosticTestStore() *MockDiagnosticTestStore {
	return &MockDiagnosticTestStore{Tests: make(map[string]*domain.DiagnosticTest)}
}

func (m *MockDiagnosticTestStore) Insert(ctx context.Context, test *domain.DiagnosticTest) error {
	if test.ID.IsZero() {
		test.ID = primitive.NewObjectID()
	}
	m.Tests[test.ID.Hex()] = test
	return nil
}

func (m *MockDiagnosticTestStore) GetByID(ctx context.Context, id string) (*domain.DiagnosticTest, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	test, ok := m.Tests[id]
	if !ok {
		return nil, store.ErrTestNotFound
	}
	return test, nil
}

func (m *MockDiagnosticTestStore) List(ctx context.Context) ([]domain.DiagnosticTest, error) {
	tests := []domain.DiagnosticTest{}
	for _, dt := range m.Tests {
		tests = append(tests, *dt)
	}
	return tests, nil
}

func (m *MockDiagnosticTestStore) Delete(ctx context.Context, id string) (int64, error) {
	if err := checkID(id); err != nil {
		return 0, err
	}
	if _, ok := m.Tests[id]; !ok {
		return 0, nil
	}
	delete(m.Tests, id)
	return 1, nil
}

func (m *MockDiagnosticTestStore) AdjustCounters(ctx context.Context, id string, slotsDelta, reservationsDelta int) error {
	if m.AdjustCountersFn != nil {
		return m.AdjustCountersFn(ctx, id, slotsDelta, reservationsDelta)
	}
	if err := checkID(id); err != nil {
		return err
	}
	test, ok := m.Tests[id]
	if !ok {
		return store.ErrTestNotFound
	}
	test.Slots += slotsDelta
	test.Reservations += reservationsDelta
	return nil
}

// MockReservationStore implements store.ReservationStore for testing
type MockReservationStore struct {
	InsertFn func(ctx context.Context, reservation *domain.Reservation) error
	DeleteFn func(ctx context.Context, id string) (int64, error)

	// Reservations backs the default in-memory implementation, keyed by hex id.
	Reservations map[string]*domain.Reservation
}

var _ store.ReservationStore = (*MockReservationStore)(nil)

// NewMockReservationStore creates a mock reservation store with initialized defaults.
func NewMockReservationStore() *MockReservationStore {
	return &MockReservationStore{Reservations: make(map[string]*domain.Reservation)}
}

func (m *MockReservationStore) Insert(ctx context.Context, reservation *domain.Reservation) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, reservation)
	}
	if reservation.ID.IsZero() {
		reservation.ID = primitive.NewObjectID()
	}
	m.Reservations[reservation.ID.Hex()] = reservation
	return nil
}

func (m *MockReservationStore) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	reservation, ok := m.Reservations[id]
	if !ok {
		return nil, store.ErrReservationNotFound
	}
	return reservation, nil
}

func (m *MockReservationStore) List(ctx context.Context) ([]domain.Reservation, error) {
	reservations := []domain.Reservation{}
	for _, res := range m.Reservations {
		reservations = append(reservations, *res)
	}
	return reservations, nil
}

func (m *MockReservationStore) ListByUser(ctx context.Context, email string) ([]domain.Reservation, error) {
	reservations := []domain.Reservation{}
	for _, res := range m.Reservations {
		if res.UserEmail == email {
			reservations = append(reservations, *res)
		}
	}
	return reservations, nil
}

func (m *MockReservationStore) Delete(ctx context.Context, id string) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if err := checkID(id); err != nil {
		return 0, err
	}
	if _, ok := m.Reservations[id]; !ok {
		return 0, nil
	}
	delete(m.Reservations, id)
	return 1, nil
}

// MockBannerStore implements store.BannerStore for testing
type MockBannerStore struct {
	SetActiveFn func(ctx context.Context, id string) (int64, error)

	// Banners backs the default in-memory implementation, keyed by hex id.
	Banners map[string]*domain.Banner
}

var _ store.BannerStore = (*MockBannerStore)(nil)

// NewMockBannerStore creates a mock banner store with initialized defaults.
func NewMockBannerStore() *MockBannerStore {
	return &MockBannerStore{Banners: make(map[string]*domain.Banner)}
}

func (m *MockBannerStore) Insert(ctx context.Context, banner *domain.Banner) error {
	if banner.ID.IsZero() {
		banner.ID = primitive.NewObjectID()
	}
	m.Banners[banner.ID.Hex()] = banner
	return nil
}

func (m *MockBannerStore) List(ctx context.Context) ([]domain.Banner, error) {
	banners := []domain.Banner{}
	for _, b := range m.Banners {
		banners = append(banners, *b)
	}
	return banners, nil
}

func (m *MockBannerStore) SetActive(ctx context.Context, id string) (int64, error) {
	if m.SetActiveFn != nil {
		return m.SetActiveFn(ctx, id)
	}
	if err := checkID(id); err != nil {
		return 0, err
	}
	target, ok := m.Banners[id]
	if !ok {
		return 0, store.ErrBannerNotFound
	}
	var modified int64
	if !target.IsActive {
		target.IsActive = true
		modified = 1
	}
	for key, b := range m.Banners {
		if key != id {
			b.IsActive = false
		}
	}
	return modified, nil
}

func (m *MockBannerStore) Delete(ctx context.Context, id string) (int64, error) {
	if err := checkID(id); err != nil {
		return 0, err
	}
	if _, ok := m.Banners[id]; !ok {
		return 0, nil
	}
	delete(m.Banners, id)
	return 1, nil
}

// MockHealthTipStore implements store.HealthTipStore for testing
type MockHealthTipStore struct {
	Tips []domain.HealthTip
}

var _ store.HealthTipStore = (*MockHealthTipStore)(nil)

func (m *MockHealthTipStore) List(ctx context.Context) ([]domain.HealthTip, error) {
	return m.Tips, nil
}
