package handler

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/roamly/group-travel-booking/internal/repository"
	"github.com/roamly/group-travel-booking/internal/utils"
)

// DiagHandler reports which destinations have an image folder on disk.
// Useful when reconciling the catalog against the static asset tree,
// whose folder names drifted across uploads.
type DiagHandler struct {
	Destinations *repository.DestinationRepo
	ImageBaseDir string
}

func NewDiagHandler(d *repository.DestinationRepo, baseDir string) *DiagHandler {
	if d == nil {
		panic("nil repository passed to NewDiagHandler")
	}
	if baseDir == "" {
		baseDir = os.Getenv("IMAGE_BASE_DIR")
	}
	if baseDir == "" {
		baseDir = "static/images/destinations"
	}
	return &DiagHandler{Destinations: d, ImageBaseDir: baseDir}
}

type imageDirEntry struct {
	DestinationID uint64 `json:"destination_id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Dir           string `json:"dir,omitempty"`
	Found         bool   `json:"found"`
}

// ImageDirs handles GET /v1/admin/diag/image-dirs (ADMIN only).  For
// each destination it resolves the expected image folder, trying the
// legacy underscore and condensed spellings before reporting a miss.
func (h *DiagHandler) ImageDirs(c echo.Context) error {
	items, err := h.Destinations.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]imageDirEntry, 0, len(items))
	missing := 0
	for _, d := range items {
		e := imageDirEntry{DestinationID: d.ID, Name: d.Name, Slug: utils.DestinationSlug(d.Name)}
		if dir, ok := utils.ResolveImageDir(h.ImageBaseDir, d.Name); ok {
			e.Dir, e.Found = dir, true
		} else {
			missing++
		}
		out = append(out, e)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out, "missing": missing})
}
