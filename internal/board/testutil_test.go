package board_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/devgrid/boardhub/internal/board"
	"github.com/devgrid/boardhub/internal/domain"
)

// ---------------------------------------------------------------------------
// In-memory store — stateful fake backing the service tests so ordering
// behavior can be replayed across many operations
// ---------------------------------------------------------------------------

type memberKey struct {
	projectID uuid.UUID
	userID    uuid.UUID
}

type memStore struct {
	mu            sync.Mutex
	users         map[uuid.UUID]*domain.User
	projects      map[uuid.UUID]*domain.Project
	columns       map[uuid.UUID]*domain.Column
	tasks         map[uuid.UUID]*domain.Task
	comments      map[uuid.UUID]*domain.TaskComment
	checklist     map[uuid.UUID]*domain.ChecklistItem
	tags          map[uuid.UUID]*domain.TaskTag
	attachments   map[uuid.UUID]*domain.TaskAttachment
	members       map[memberKey]*domain.ProjectMember
	notifications map[uuid.UUID]*domain.Notification
}

func newMemStore() *memStore {
	return &memStore{
		users:         make(map[uuid.UUID]*domain.User),
		projects:      make(map[uuid.UUID]*domain.Project),
		columns:       make(map[uuid.UUID]*domain.Column),
		tasks:         make(map[uuid.UUID]*domain.Task),
		comments:      make(map[uuid.UUID]*domain.TaskComment),
		checklist:     make(map[uuid.UUID]*domain.ChecklistItem),
		tags:          make(map[uuid.UUID]*domain.TaskTag),
		attachments:   make(map[uuid.UUID]*domain.TaskAttachment),
		members:       make(map[memberKey]*domain.ProjectMember),
		notifications: make(map[uuid.UUID]*domain.Notification),
	}
}

func (s *memStore) Users() domain.UserRepository                 { return &memUserRepo{s} }
func (s *memStore) Projects() domain.ProjectRepository           { return &memProjectRepo{s} }
func (s *memStore) Columns() domain.ColumnRepository             { return &memColumnRepo{s} }
func (s *memStore) Tasks() domain.TaskRepository                 { return &memTaskRepo{s} }
func (s *memStore) Comments() domain.CommentRepository           { return &memCommentRepo{s} }
func (s *memStore) Checklists() domain.ChecklistRepository       { return &memChecklistRepo{s} }
func (s *memStore) Tags() domain.TagRepository                   { return &memTagRepo{s} }
func (s *memStore) Attachments() domain.AttachmentRepository     { return &memAttachmentRepo{s} }
func (s *memStore) Members() domain.MemberRepository             { return &memMemberRepo{s} }
func (s *memStore) Notifications() domain.NotificationRepository { return &memNotificationRepo{s} }

// --- users ---

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memUserRepo) Update(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

// --- projects ---

type memProjectRepo struct{ s *memStore }

func (r *memProjectRepo) Create(_ context.Context, p *domain.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.projects[p.ID] = &cp
	return nil
}

func (r *memProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProjectRepo) Update(_ context.Context, p *domain.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.s.projects[p.ID] = &cp
	return nil
}

func (r *memProjectRepo) ListByMember(_ context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Project
	for _, p := range r.s.projects {
		if p.OwnerID == userID {
			cp := *p
			out = append(out, &cp)
			continue
		}
		if _, ok := r.s.members[memberKey{p.ID, userID}]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.projects, id)
	return nil
}

// --- columns ---

type memColumnRepo struct{ s *memStore }

func (r *memColumnRepo) Create(_ context.Context, c *domain.Column) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.columns[c.ID] = &cp
	return nil
}

func (r *memColumnRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Column, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.columns[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memColumnRepo) ListByProject(_ context.Context, projectID uuid.UUID) ([]*domain.Column, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Column
	for _, c := range r.s.columns {
		if c.ProjectID == projectID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *memColumnRepo) MaxPosition(_ context.Context, projectID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	max := -1
	for _, c := range r.s.columns {
		if c.ProjectID == projectID && c.Position > max {
			max = c.Position
		}
	}
	return max, nil
}

func (r *memColumnRepo) Update(_ context.Context, c *domain.Column) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.columns[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.s.columns[c.ID] = &cp
	return nil
}

func (r *memColumnRepo) SavePositions(_ context.Context, cols []*domain.Column) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range cols {
		stored, ok := r.s.columns[c.ID]
		if !ok {
			return domain.ErrNotFound
		}
		stored.Position = c.Position
	}
	return nil
}

func (r *memColumnRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.columns[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.columns, id)
	return nil
}

// --- tasks ---

type memTaskRepo struct{ s *memStore }

func (r *memTaskRepo) Create(_ context.Context, t *domain.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *t
	r.s.tasks[t.ID] = &cp
	return nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTaskRepo) ListByProject(_ context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Task
	for _, t := range r.s.tasks {
		if t.ProjectID == projectID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *memTaskRepo) ListByColumn(_ context.Context, columnID uuid.UUID) ([]*domain.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Task
	for _, t := range r.s.tasks {
		if t.ColumnID == columnID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *memTaskRepo) MaxPosition(_ context.Context, columnID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	max := -1
	for _, t := range r.s.tasks {
		if t.ColumnID == columnID && t.Position > max {
			max = t.Position
		}
	}
	return max, nil
}

func (r *memTaskRepo) MaxTaskNumber(_ context.Context, projectID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	max := 0
	for _, t := range r.s.tasks {
		if t.ProjectID == projectID && t.TaskNumber > max {
			max = t.TaskNumber
		}
	}
	return max, nil
}

func (r *memTaskRepo) Update(_ context.Context, t *domain.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tasks[t.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *t
	r.s.tasks[t.ID] = &cp
	return nil
}

func (r *memTaskRepo) SavePositions(_ context.Context, tasks []*domain.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range tasks {
		stored, ok := r.s.tasks[t.ID]
		if !ok {
			return domain.ErrNotFound
		}
		stored.ColumnID = t.ColumnID
		stored.Position = t.Position
	}
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tasks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.tasks, id)
	return nil
}

// --- comments ---

type memCommentRepo struct{ s *memStore }

func (r *memCommentRepo) Create(_ context.Context, c *domain.TaskComment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.comments[c.ID] = &cp
	return nil
}

func (r *memCommentRepo) GetByID(_ context.Context, taskID, id uuid.UUID) (*domain.TaskComment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comments[id]
	if !ok || c.TaskID != taskID {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCommentRepo) ListByTask(_ context.Context, taskID uuid.UUID) ([]*domain.TaskComment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.TaskComment
	for _, c := range r.s.comments {
		if c.TaskID == taskID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memCommentRepo) Delete(_ context.Context, taskID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comments[id]
	if !ok || c.TaskID != taskID {
		return domain.ErrNotFound
	}
	delete(r.s.comments, id)
	return nil
}

// --- checklist ---

type memChecklistRepo struct{ s *memStore }

func (r *memChecklistRepo) Create(_ context.Context, item *domain.ChecklistItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *item
	r.s.checklist[item.ID] = &cp
	return nil
}

func (r *memChecklistRepo) GetByID(_ context.Context, taskID, id uuid.UUID) (*domain.ChecklistItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.checklist[id]
	if !ok || item.TaskID != taskID {
		return nil, domain.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *memChecklistRepo) ListByTask(_ context.Context, taskID uuid.UUID) ([]*domain.ChecklistItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.ChecklistItem
	for _, item := range r.s.checklist {
		if item.TaskID == taskID {
			cp := *item
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *memChecklistRepo) MaxPosition(_ context.Context, taskID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	max := -1
	for _, item := range r.s.checklist {
		if item.TaskID == taskID && item.Position > max {
			max = item.Position
		}
	}
	return max, nil
}

func (r *memChecklistRepo) Update(_ context.Context, item *domain.ChecklistItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.checklist[item.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	r.s.checklist[item.ID] = &cp
	return nil
}

func (r *memChecklistRepo) Delete(_ context.Context, taskID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.checklist[id]
	if !ok || item.TaskID != taskID {
		return domain.ErrNotFound
	}
	delete(r.s.checklist, id)
	return nil
}

// --- tags ---

type memTagRepo struct{ s *memStore }

func (r *memTagRepo) Create(_ context.Context, t *domain.TaskTag) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *t
	r.s.tags[t.ID] = &cp
	return nil
}

func (r *memTagRepo) GetByID(_ context.Context, taskID, id uuid.UUID) (*domain.TaskTag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tags[id]
	if !ok || t.TaskID != taskID {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTagRepo) ListByTask(_ context.Context, taskID uuid.UUID) ([]*domain.TaskTag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.TaskTag
	for _, t := range r.s.tags {
		if t.TaskID == taskID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memTagRepo) Delete(_ context.Context, taskID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tags[id]
	if !ok || t.TaskID != taskID {
		return domain.ErrNotFound
	}
	delete(r.s.tags, id)
	return nil
}

// --- attachments ---

type memAttachmentRepo struct{ s *memStore }

func (r *memAttachmentRepo) Create(_ context.Context, a *domain.TaskAttachment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *a
	r.s.attachments[a.ID] = &cp
	return nil
}

func (r *memAttachmentRepo) GetByID(_ context.Context, taskID, id uuid.UUID) (*domain.TaskAttachment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.attachments[id]
	if !ok || a.TaskID != taskID {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memAttachmentRepo) ListByTask(_ context.Context, taskID uuid.UUID) ([]*domain.TaskAttachment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.TaskAttachment
	for _, a := range r.s.attachments {
		if a.TaskID == taskID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memAttachmentRepo) Delete(_ context.Context, taskID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.attachments[id]
	if !ok || a.TaskID != taskID {
		return domain.ErrNotFound
	}
	delete(r.s.attachments, id)
	return nil
}

// --- members ---

type memMemberRepo struct{ s *memStore }

func (r *memMemberRepo) Add(_ context.Context, m *domain.ProjectMember) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *m
	r.s.members[memberKey{m.ProjectID, m.UserID}] = &cp
	return nil
}

func (r *memMemberRepo) Get(_ context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.members[memberKey{projectID, userID}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *memMemberRepo) ListByProject(_ context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.ProjectMember
	for k, m := range r.s.members {
		if k.projectID == projectID {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JoinedAt.Before(out[j].JoinedAt) })
	return out, nil
}

func (r *memMemberRepo) UpdateRole(_ context.Context, projectID, userID uuid.UUID, role domain.MemberRole) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.members[memberKey{projectID, userID}]
	if !ok {
		return domain.ErrNotFound
	}
	m.Role = role
	return nil
}

func (r *memMemberRepo) Remove(_ context.Context, projectID, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.members[memberKey{projectID, userID}]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.members, memberKey{projectID, userID})
	return nil
}

// --- notifications ---

type memNotificationRepo struct{ s *memStore }

func (r *memNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *n
	r.s.notifications[n.ID] = &cp
	return nil
}

func (r *memNotificationRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Notification
	for _, n := range r.s.notifications {
		if n.UserID == userID {
			cp := *n
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memNotificationRepo) CountUnread(_ context.Context, userID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, n := range r.s.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *memNotificationRepo) MarkRead(_ context.Context, userID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok || n.UserID != userID {
		return domain.ErrNotFound
	}
	n.IsRead = true
	return nil
}

func (r *memNotificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range r.s.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (r *memNotificationRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok || n.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.s.notifications, id)
	return nil
}

// ---------------------------------------------------------------------------
// Recording publisher
// ---------------------------------------------------------------------------

type publishedEvent struct {
	channel uuid.UUID
	event   string
	payload any
}

type recordingPublisher struct {
	mu      sync.Mutex
	project []publishedEvent
	user    []publishedEvent
}

func (p *recordingPublisher) PublishToProject(_ context.Context, projectID uuid.UUID, event string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.project = append(p.project, publishedEvent{projectID, event, payload})
	return nil
}

func (p *recordingPublisher) PublishToUser(_ context.Context, userID uuid.UUID, event string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.user = append(p.user, publishedEvent{userID, event, payload})
	return nil
}

func (p *recordingPublisher) projectEvents(name string) []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []publishedEvent
	for _, e := range p.project {
		if e.event == name {
			out = append(out, e)
		}
	}
	return out
}

func (p *recordingPublisher) userEvents(name string) []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []publishedEvent
	for _, e := range p.user {
		if e.event == name {
			out = append(out, e)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Fixture
// ---------------------------------------------------------------------------

type fixture struct {
	store   *memStore
	pub     *recordingPublisher
	service *board.Service
	owner   *domain.User
	project *domain.Project
}

func newFixture() *fixture {
	store := newMemStore()
	pub := &recordingPublisher{}
	dispatcher := board.NewDispatcher(store.Notifications(), pub, nil)
	service := board.NewService(store, pub, dispatcher)

	owner := &domain.User{
		ID:          uuid.New(),
		Email:       "owner@example.com",
		DisplayName: "Alice Owner",
		CreatedAt:   time.Now(),
	}
	store.users[owner.ID] = owner

	project := &domain.Project{
		ID:        uuid.New(),
		OwnerID:   owner.ID,
		Name:      "Release Board",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	store.projects[project.ID] = project

	return &fixture{store: store, pub: pub, service: service, owner: owner, project: project}
}

// addUser registers a user and optionally enrolls them in the fixture project.
func (f *fixture) addUser(name string, role domain.MemberRole) *domain.User {
	u := &domain.User{
		ID:          uuid.New(),
		Email:       name + "@example.com",
		DisplayName: name,
		CreatedAt:   time.Now(),
	}
	f.store.users[u.ID] = u
	if role != "" {
		f.store.members[memberKey{f.project.ID, u.ID}] = &domain.ProjectMember{
			ProjectID: f.project.ID,
			UserID:    u.ID,
			Role:      role,
			JoinedAt:  time.Now(),
		}
	}
	return u
}

// addColumn seeds a column at the given position.
func (f *fixture) addColumn(name string, position int) *domain.Column {
	c := &domain.Column{
		ID:        uuid.New(),
		ProjectID: f.project.ID,
		Name:      name,
		Color:     "#64748b",
		Position:  position,
		CreatedAt: time.Now(),
	}
	f.store.columns[c.ID] = c
	return c
}

// addTask seeds a task at the given position in a column.
func (f *fixture) addTask(columnID uuid.UUID, title string, position, taskNumber int) *domain.Task {
	t := &domain.Task{
		ID:          uuid.New(),
		ProjectID:   f.project.ID,
		ColumnID:    columnID,
		Title:       title,
		Priority:    1,
		Position:    position,
		TaskNumber:  taskNumber,
		CreatedByID: f.owner.ID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.store.tasks[t.ID] = t
	return t
}

// columnOrder returns task titles in stored position order for a column.
func (f *fixture) columnOrder(columnID uuid.UUID) []string {
	tasks, _ := f.store.Tasks().ListByColumn(context.Background(), columnID)
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

// positions returns the stored positions in ascending order for a column.
func (f *fixture) positions(columnID uuid.UUID) []int {
	tasks, _ := f.store.Tasks().ListByColumn(context.Background(), columnID)
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.Position
	}
	return out
}
