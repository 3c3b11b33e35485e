package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devgrid/boardhub/internal/domain"
)

type Store struct {
	pool          *pgxpool.Pool
	users         *UserRepo
	projects      *ProjectRepo
	columns       *ColumnRepo
	tasks         *TaskRepo
	comments      *CommentRepo
	checklists    *ChecklistRepo
	tags          *TagRepo
	attachments   *AttachmentRepo
	members       *MemberRepo
	notifications *NotificationRepo
}

func New(ctx context.Context, dsn string, maxConns int32) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: parse config: %w", err)
	}

	cfg.MaxConns = maxConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: connect: %w", err)
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres.New: ping: %w", err)
	}

	return &Store{
		pool:          pool,
		users:         NewUserRepo(pool),
		projects:      NewProjectRepo(pool),
		columns:       NewColumnRepo(pool),
		tasks:         NewTaskRepo(pool),
		comments:      NewCommentRepo(pool),
		checklists:    NewChecklistRepo(pool),
		tags:          NewTagRepo(pool),
		attachments:   NewAttachmentRepo(pool),
		members:       NewMemberRepo(pool),
		notifications: NewNotificationRepo(pool),
	}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Users() domain.UserRepository                 { return s.users }
func (s *Store) Projects() domain.ProjectRepository           { return s.projects }
func (s *Store) Columns() domain.ColumnRepository             { return s.columns }
func (s *Store) Tasks() domain.TaskRepository                 { return s.tasks }
func (s *Store) Comments() domain.CommentRepository           { return s.comments }
func (s *Store) Checklists() domain.ChecklistRepository       { return s.checklists }
func (s *Store) Tags() domain.TagRepository                   { return s.tags }
func (s *Store) Attachments() domain.AttachmentRepository     { return s.attachments }
func (s *Store) Members() domain.MemberRepository             { return s.members }
func (s *Store) Notifications() domain.NotificationRepository { return s.notifications }
