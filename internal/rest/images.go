package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/dfryer1193/gallery/api"
	"github.com/dfryer1193/gallery/gallery/domain"
	"github.com/gin-gonic/gin"
)

// Catalog lists the images available in the canonical variant.
type Catalog interface {
	ListCanonical(ctx context.Context) ([]string, error)
}

// AssetResolver reads single images by size and file name.
type AssetResolver interface {
	Serve(ctx context.Context, size string, filename string) (*domain.Asset, error)
	Variants() []domain.SizeVariant
}

type ImageHandler struct {
	catalog Catalog
	assets  AssetResolver
}

func NewImageHandler(catalog Catalog, assets AssetResolver) *ImageHandler {
	return &ImageHandler{
		catalog: catalog,
		assets:  assets,
	}
}

func (h *ImageHandler) ListImages(c *gin.Context) {
	images, err := h.catalog.ListCanonical(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, images)
}

func (h *ImageHandler) GetImage(c *gin.Context) {
	size := c.Param("size")
	filename := c.Param("filename")

	asset, err := h.assets.Serve(c.Request.Context(), size, filename)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Data(http.StatusOK, asset.ContentType, asset.Content)
}

func (h *ImageHandler) ListVariants(c *gin.Context) {
	c.JSON(http.StatusOK, h.assets.Variants())
}

// writeError maps gallery errors to HTTP statuses. Messages for server-side
// failures stay generic; the detail goes to the request log.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "image not found"})
	case errors.Is(err, domain.ErrInvalidVariant):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid image size"})
	case errors.Is(err, domain.ErrDirectoryUnavailable):
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image directory"})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}
