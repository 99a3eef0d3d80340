package files

import (
	"errors"
	"time"

	"minio-storage/core/backend"
	"minio-storage/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for file operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the files routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/files")
	group.Post("/", h.HandleUpload)
	group.Get("/", h.HandleList)
	// HEAD before GET: Fiber lets GET routes answer HEAD requests,
	// registration order decides which handler wins.
	group.Head("/blob/*", h.HandleExists)
	group.Get("/blob/*", h.HandleDownload)
	group.Delete("/blob/*", h.HandleDelete)
	group.Get("/stat/*", h.HandleStat)
	group.Get("/url/*", h.HandleURL)
}

// HandleUpload stores an uploaded file.
// @Summary Upload File
// @Description Stores the uploaded multipart file in the storage backend. The object name defaults to the uploaded filename and can be overridden with the 'name' form field.
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File content"
// @Param name formData string false "Object name override"
// @Success 201 {object} backend.ObjectInfo "Stored Object"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing 'file' form field"})
	}

	name := c.FormValue("name")
	if name == "" {
		name = fileHeader.Filename
	}
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "object name is required"})
	}

	content, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer content.Close()

	info, err := h.service.Upload(c.Context(), name, content, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		l.Error("Upload failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Object stored", zap.String("name", info.Name), zap.Int64("size", info.Size))
	return c.Status(fiber.StatusCreated).JSON(info)
}

// HandleDownload streams an object's content.
// @Summary Download File
// @Description Streams the content of the named object.
// @Tags files
// @Produce octet-stream
// @Param name path string true "Object name"
// @Success 200 {file} binary "Object content"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files/blob/{name} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)
	name := objectName(c)

	rc, info, err := h.service.Download(c.Context(), name)
	if err != nil {
		return h.renderError(c, l, "Download failed", name, err)
	}

	if info.ContentType != "" {
		c.Set(fiber.HeaderContentType, info.ContentType)
	}
	return c.SendStream(rc, int(info.Size))
}

// HandleExists reports object presence via status code.
// @Summary Check File Existence
// @Description Returns 200 when the named object exists, 404 otherwise.
// @Tags files
// @Param name path string true "Object name"
// @Success 200 "Exists"
// @Failure 404 "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files/blob/{name} [head]
func (h *Handler) HandleExists(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)
	name := objectName(c)

	exists, err := h.service.Exists(c.Context(), name)
	if err != nil {
		l.Error("Existence check failed", zap.String("name", name), zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	if !exists {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.SendStatus(fiber.StatusOK)
}

// HandleDelete removes an object.
// @Summary Delete File
// @Description Removes the named object. Deleting a missing object succeeds.
// @Tags files
// @Produce json
// @Param name path string true "Object name"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files/blob/{name} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)
	name := objectName(c)

	if err := h.service.Remove(c.Context(), name); err != nil {
		l.Error("Delete failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Object deleted", zap.String("name", name))
	return c.JSON(fiber.Map{"status": "deleted", "name": name})
}

// HandleStat returns object metadata.
// @Summary Stat File
// @Description Returns size and, when indexed, content type and upload time of the named object.
// @Tags files
// @Produce json
// @Param name path string true "Object name"
// @Success 200 {object} backend.ObjectInfo "Object metadata"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files/stat/{name} [get]
func (h *Handler) HandleStat(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)
	name := objectName(c)

	info, err := h.service.Stat(c.Context(), name)
	if err != nil {
		return h.renderError(c, l, "Stat failed", name, err)
	}
	return c.JSON(info)
}

// HandleURL returns the object's URL.
// @Summary Get File URL
// @Description Returns the public URL of the named object, or a presigned one with ?signed=true (expiry defaults to 15m, accepts Go durations).
// @Tags files
// @Produce json
// @Param name path string true "Object name"
// @Param signed query boolean false "Return a presigned URL"
// @Param expiry query string false "Presigned URL validity (e.g. 1h)"
// @Success 200 {object} map[string]string "URL"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files/url/{name} [get]
func (h *Handler) HandleURL(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)
	name := objectName(c)

	if c.Query("signed") != "true" {
		return c.JSON(fiber.Map{"name": name, "url": h.service.PublicURL(name)})
	}

	var expiry time.Duration
	if raw := c.Query("expiry"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid expiry: " + raw})
		}
		expiry = parsed
	}

	url, err := h.service.SignedURL(c.Context(), name, expiry)
	if err != nil {
		l.Error("Presigning failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"name": name, "url": url})
}

// HandleList lists stored objects.
// @Summary List Files
// @Description Lists stored objects, optionally filtered by prefix. Served from the object index when a database is connected.
// @Tags files
// @Produce json
// @Param prefix query string false "Name prefix filter"
// @Success 200 {array} backend.ObjectInfo "Objects"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)

	objects, err := h.service.List(c.Context(), c.Query("prefix"))
	if err != nil {
		l.Error("Listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(objects)
}

func (h *Handler) renderError(c *fiber.Ctx, l *zap.Logger, msg, name string, err error) error {
	if errors.Is(err, backend.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "object not found", "name": name})
	}
	l.Error(msg, zap.String("name", name), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// objectName extracts the object name from the wildcard segment, keeping
// nested names (a/b/c.txt) intact.
func objectName(c *fiber.Ctx) string {
	return c.Params("*")
}
