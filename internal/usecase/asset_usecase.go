package usecase

import (
	"context"
	"fmt"
	"time"

	"sky-archive/internal/entity"
	"sky-archive/internal/repo/persistent"
	"sky-archive/pkg/logger"
	"sky-archive/pkg/scale"
)

type AssetUseCase interface {
	Create(ctx context.Context, asset *entity.Asset, ownerID string) (string, error)
	Get(ctx context.Context, id string) (*entity.Asset, error)
	Newest(ctx context.Context) (*entity.Asset, error)
	Scatter(ctx context.Context) ([]*entity.ScatterAsset, error)
}

type assetUseCase struct {
	assetRepo persistent.AssetRepository
	logger    *logger.Logger
	now       func() time.Time
}

func NewAssetUseCase(assetRepo persistent.AssetRepository, logger *logger.Logger) AssetUseCase {
	return &assetUseCase{
		assetRepo: assetRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// Create stamps the owning user and creation timestamp server-side;
// client-supplied values for those fields are discarded.
func (uc *assetUseCase) Create(ctx context.Context, asset *entity.Asset, ownerID string) (string, error) {
	asset.ID = ""
	asset.UserID = ownerID
	asset.CreatedAt = uc.now().Format(scale.Layout)

	id, err := uc.assetRepo.Create(ctx, asset)
	if err != nil {
		uc.logger.Error("Failed to create asset: %v", err)
		return "", fmt.Errorf("create asset: %w", err)
	}
	return id, nil
}

func (uc *assetUseCase) Get(ctx context.Context, id string) (*entity.Asset, error) {
	asset, err := uc.assetRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get asset %s: %v", id, err)
		return nil, fmt.Errorf("get asset: %w", err)
	}
	if asset == nil {
		return nil, entity.ErrNotFound
	}
	return asset, nil
}

func (uc *assetUseCase) Newest(ctx context.Context) (*entity.Asset, error) {
	asset, err := uc.assetRepo.GetNewest(ctx)
	if err != nil {
		uc.logger.Error("Failed to get newest asset: %v", err)
		return nil, fmt.Errorf("get newest asset: %w", err)
	}
	if asset == nil {
		return nil, entity.ErrNotFound
	}
	return asset, nil
}

// Scatter decorates the minimal asset projection with the decay scale. A
// malformed stored timestamp fails the whole listing rather than defaulting.
func (uc *assetUseCase) Scatter(ctx context.Context) ([]*entity.ScatterAsset, error) {
	assets, err := uc.assetRepo.ListForScatter(ctx)
	if err != nil {
		uc.logger.Error("Failed to list scatter assets: %v", err)
		return nil, fmt.Errorf("list scatter assets: %w", err)
	}

	now := uc.now()
	scatter := make([]*entity.ScatterAsset, 0, len(assets))
	for _, asset := range assets {
		value, err := scale.ForCreatedAt(asset.CreatedAt, now)
		if err != nil {
			uc.logger.Error("Malformed created_at on asset %s: %v", asset.ID, err)
			return nil, fmt.Errorf("asset %s: %w", asset.ID, err)
		}
		scatter = append(scatter, &entity.ScatterAsset{
			ID:    asset.ID,
			Src:   asset.Src,
			Scale: value,
		})
	}
	return scatter, nil
}
