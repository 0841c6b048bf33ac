package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sky-archive/internal/entity"
	"sky-archive/internal/usecase"
)

type AssetHandler struct {
	assetUseCase usecase.AssetUseCase
}

func NewAssetHandler(assetUseCase usecase.AssetUseCase) *AssetHandler {
	return &AssetHandler{
		assetUseCase: assetUseCase,
	}
}

// CreateAsset godoc
// @Summary      Create a new asset
// @Description  Store event/image metadata. The owning user and creation timestamp are stamped server-side; client-supplied values for them are ignored.
// @Tags         asset
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.Asset true "Asset metadata"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /asset/create [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var asset entity.Asset
	if err := c.ShouldBindJSON(&asset); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := CurrentUser(c)
	if user == nil {
		abortUnauthorized(c)
		return
	}

	id, err := h.assetUseCase.Create(c.Request.Context(), &asset, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create asset"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"_id": id})
}

// GetNewestAsset godoc
// @Summary      Get the newest asset
// @Description  Return the image source of the most recently created asset
// @Tags         asset
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /asset/new [get]
func (h *AssetHandler) GetNewestAsset(c *gin.Context) {
	asset, err := h.assetUseCase.Newest(c.Request.Context())
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No assets found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get newest asset"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"src": asset.Src})
}

// GetScatterAssets godoc
// @Summary      List assets for the scatter view
// @Description  Return every asset's id and source, decorated with the computed decay scale
// @Tags         asset
// @Produce      json
// @Success      200  {array}   entity.ScatterAsset
// @Failure      500  {object}  map[string]string
// @Router       /asset/scatter [get]
func (h *AssetHandler) GetScatterAssets(c *gin.Context) {
	scatter, err := h.assetUseCase.Scatter(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list scatter assets"})
		return
	}

	c.JSON(http.StatusOK, scatter)
}

// GetAsset godoc
// @Summary      Get asset by ID
// @Description  Return the full metadata of a single asset
// @Tags         asset
// @Produce      json
// @Param        asset_id path string true "Asset ID"
// @Success      200  {object}  entity.Asset
// @Failure      404  {object}  map[string]string
// @Router       /asset/{asset_id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	asset, err := h.assetUseCase.Get(c.Request.Context(), c.Param("asset_id"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get asset"})
		return
	}

	// The id is part of the path already.
	asset.ID = ""
	c.JSON(http.StatusOK, asset)
}
