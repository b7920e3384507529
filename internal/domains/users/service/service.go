package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bytebury/ctrunner/config"
	townRepository "github.com/bytebury/ctrunner/internal/domains/towns/repository"
	"github.com/bytebury/ctrunner/internal/domains/users/dto"
	"github.com/bytebury/ctrunner/internal/domains/users/repository"
	"github.com/bytebury/ctrunner/pkg/constant"
	"github.com/bytebury/ctrunner/pkg/failure"
	"github.com/bytebury/ctrunner/pkg/helper"
	"github.com/bytebury/ctrunner/pkg/jwt"
	"github.com/bytebury/ctrunner/pkg/logger"
	"github.com/bytebury/ctrunner/pkg/pagination"
	"github.com/bytebury/ctrunner/pkg/postgres"
	"github.com/jackc/pgx/v5"
)

type UserService interface {
	Resolve(ctx context.Context, claims *jwt.Claims) (repository.UserView, error)
	Profile(ctx context.Context, id int64) (dto.UserAdminResponse, error)
	SearchMembers(ctx context.Context, req dto.SearchUsersRequest) (pagination.Response[dto.UserResponse], error)
	SearchAll(ctx context.Context, req dto.SearchUsersRequest) (pagination.Response[dto.UserAdminResponse], error)
	GetUserByID(ctx context.Context, id int64) (dto.UserAdminResponse, error)
	UpdateUser(ctx context.Context, id int64, req dto.UpdateUserRequest) (dto.UserAdminResponse, error)
	UpdateRunnerInfo(ctx context.Context, user repository.UserView, req dto.UpdateRunnerInfoRequest) (dto.UserAdminResponse, error)
}

type userService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	towns  townRepository.Querier
	config *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, repo repository.Querier, towns townRepository.Querier, cfg *config.Config, l logger.Interface) UserService {
	return &userService{
		db:     db,
		repo:   repo,
		towns:  towns,
		config: cfg,
		logger: l,
	}
}

// Resolve returns the user behind a validated token, creating the account the
// first time an email is seen.
func (s *userService) Resolve(ctx context.Context, claims *jwt.Claims) (repository.UserView, error) {
	user, err := s.repo.GetUserByEmail(ctx, s.db, claims.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		first, last := splitName(claims.Name)

		user, err = s.repo.CreateUser(ctx, s.db, repository.CreateUserParams{
			Email:     claims.Email,
			FullName:  strings.TrimSpace(claims.Name),
			FirstName: first,
			LastName:  last,
			ImageURL:  claims.Picture,
			Verified:  true,
		})
		switch {
		case errors.Is(postgres.MapError(err), postgres.ErrAlreadyExists):
			// Another request created the user first.
			user, err = s.repo.GetUserByEmail(ctx, s.db, claims.Email)
		case err != nil:
			s.logger.Error("service - user - resolve - failed to create user: %v", err)

			return repository.UserView{}, failure.InternalError(err)
		default:
			s.logger.Info("service - user - resolve - created user %d", user.ID)
		}
	}

	if err != nil {
		s.logger.Error("service - user - resolve - failed to get user by email: %v", err)

		return repository.UserView{}, failure.InternalError(err)
	}

	if user.Locked {
		return repository.UserView{}, failure.Forbidden("account is locked")
	}

	return user, nil
}

func (s *userService) Profile(ctx context.Context, id int64) (dto.UserAdminResponse, error) {
	return s.GetUserByID(ctx, id)
}

func (s *userService) SearchMembers(ctx context.Context, req dto.SearchUsersRequest) (pagination.Response[dto.UserResponse], error) {
	page, err := s.repo.SearchMembers(ctx, s.db, req.ToPagination(), helper.ContainsPattern(req.Search))
	if err != nil {
		s.logger.Error("service - user - search members - %v", err)

		return pagination.Response[dto.UserResponse]{}, failure.InternalError(err)
	}

	return dto.MembersFromPage(page), nil
}

func (s *userService) SearchAll(ctx context.Context, req dto.SearchUsersRequest) (pagination.Response[dto.UserAdminResponse], error) {
	page, err := s.repo.SearchAll(ctx, s.db, req.ToPagination(), helper.ContainsPattern(req.Search))
	if err != nil {
		s.logger.Error("service - user - search all - %v", err)

		return pagination.Response[dto.UserAdminResponse]{}, failure.InternalError(err)
	}

	return dto.UsersFromPage(page), nil
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (dto.UserAdminResponse, error) {
	user, err := s.repo.GetUserByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.UserAdminResponse{}, failure.NotFound(fmt.Sprintf("user %d not found", id))
		}

		s.logger.Error("service - user - get by id - %v", err)

		return dto.UserAdminResponse{}, failure.InternalError(err)
	}

	return dto.UserAdminResponse{}.FromModel(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, req dto.UpdateUserRequest) (dto.UserAdminResponse, error) {
	user, err := s.repo.UpdateUser(ctx, s.db, repository.UpdateUserParams{
		ID:     id,
		Role:   req.Role,
		Locked: req.Locked,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.UserAdminResponse{}, failure.NotFound(fmt.Sprintf("user %d not found", id))
		}

		s.logger.Error("service - user - update - %v", err)

		return dto.UserAdminResponse{}, failure.InternalError(err)
	}

	return dto.UserAdminResponse{}.FromModel(user), nil
}

// UpdateRunnerInfo links a runner id to the user and records the towns they
// had already completed before signing up.
func (s *userService) UpdateRunnerInfo(ctx context.Context, user repository.UserView, req dto.UpdateRunnerInfoRequest) (dto.UserAdminResponse, error) {
	if !user.IsOrphan() {
		return dto.UserAdminResponse{}, failure.Conflict("runner info is already set")
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if err := ValidateRunnerInfo(req); err != nil {
		return dto.UserAdminResponse{}, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("service - user - update runner info - failed to begin transaction: %v", err)

		return dto.UserAdminResponse{}, failure.InternalError(err)
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error("service - user - update runner info - failed to rollback transaction: %v", err)
		}
	}(tx, ctx)

	err = s.repo.UpdateRunnerInfo(ctx, tx, repository.UpdateRunnerInfoParams{
		UserID:     user.ID,
		RunnerID:   req.RunnerID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		HometownID: req.HometownID,
	})
	if err != nil {
		if errors.Is(postgres.MapError(err), postgres.ErrAlreadyExists) {
			return dto.UserAdminResponse{}, failure.Conflict(fmt.Sprintf("runner id %d is already taken", req.RunnerID))
		}

		s.logger.Error("service - user - update runner info - %v", err)

		return dto.UserAdminResponse{}, failure.InternalError(err)
	}

	for _, townID := range req.Towns {
		if _, err := s.towns.MarkCompleted(ctx, tx, user.ID, townID); err != nil {
			s.logger.Error("service - user - update runner info - failed to mark town %d: %v", townID, err)

			return dto.UserAdminResponse{}, failure.InternalError(err)
		}
	}

	updated, err := s.repo.GetUserByID(ctx, tx, user.ID)
	if err != nil {
		s.logger.Error("service - user - update runner info - %v", err)

		return dto.UserAdminResponse{}, failure.InternalError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		s.logger.Error("service - user - update runner info - failed to commit transaction: %v", err)

		return dto.UserAdminResponse{}, failure.InternalError(err)
	}

	return dto.UserAdminResponse{}.FromModel(updated), nil
}

func ValidateRunnerInfo(req dto.UpdateRunnerInfoRequest) error {
	if req.RunnerID < constant.RunnerIDMin || req.RunnerID > constant.RunnerIDMax {
		return failure.Unprocessable("runner id must be between %d and %d", constant.RunnerIDMin, constant.RunnerIDMax)
	}

	if err := validateName("first name", req.FirstName); err != nil {
		return err
	}

	if err := validateName("last name", req.LastName); err != nil {
		return err
	}

	if !validTown(req.HometownID) {
		return failure.Unprocessable("hometown %d is not a valid town", req.HometownID)
	}

	for _, id := range req.Towns {
		if !validTown(id) {
			return failure.Unprocessable("town %d is not a valid town", id)
		}
	}

	return nil
}

func validateName(field, name string) error {
	if helper.IsBlank(name) {
		return failure.Unprocessable("%s must not be blank", field)
	}

	if len([]rune(name)) > constant.NameMaxChars {
		return failure.Unprocessable("%s must be at most %d characters", field, constant.NameMaxChars)
	}

	return nil
}

func validTown(id int64) bool {
	return id >= constant.TownIDMin && id <= constant.TownIDMax
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}

	return parts[0], strings.Join(parts[1:], " ")
}
