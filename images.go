package sitecms

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/gokler/sitecms/content"
	"github.com/gokler/sitecms/model"
	"github.com/gokler/sitecms/views"
)

// uploadsSubdir is where processed images live inside the static dir.
const uploadsSubdir = "uploads"

// receiveUpload reads the "image" file of a multipart request and hands it
// to the content service.
func (a *App) receiveUpload(c echo.Context) (model.Upload, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return model.Upload{}, &content.ValidationError{Fields: map[string]string{"image": "is required"}}
	}
	if file.Size > content.MaxUploadSize {
		return model.Upload{}, &content.ValidationError{Fields: map[string]string{"image": "file too large (max 10MB)"}}
	}
	src, err := file.Open()
	if err != nil {
		return model.Upload{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()
	return a.Content.SaveUpload(c.Request().Context(), a.caller(c), file.Filename, src)
}

func (a *App) apiListUploads(c echo.Context) error {
	uploads, err := a.Content.ListUploads(c.Request().Context(), a.caller(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, uploads)
}

func (a *App) apiUpload(c echo.Context) error {
	// Anonymous callers are refused before the body is parsed.
	if !a.IsAdmin(c) {
		return content.ErrUnauthorized
	}
	u, err := a.receiveUpload(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"filename":     u.Filename,
		"originalName": u.OriginalName,
		"width":        u.Width,
		"height":       u.Height,
		"size":         u.Size,
		"uploadedAt":   u.UploadedAt,
		"url":          u.URL(),
	})
}

func (a *App) apiDeleteUpload(c echo.Context) error {
	if err := a.Content.DeleteUpload(c.Request().Context(), a.caller(c), c.Param("filename")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (a *App) handleAdminUploads(c echo.Context) error {
	return a.renderUploads(c, c.QueryParam("msg"))
}

func (a *App) handleAdminUpload(c echo.Context) error {
	u, err := a.receiveUpload(c)
	if err != nil {
		var verr *content.ValidationError
		if errors.As(err, &verr) {
			return a.renderUploadsStatus(c, http.StatusBadRequest, "Görsel yüklenemedi: "+verr.Fields["image"])
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/gorseller/?msg="+url.QueryEscape(u.URL()+" yüklendi."))
}

func (a *App) handleAdminUploadDelete(c echo.Context) error {
	if err := a.Content.DeleteUpload(c.Request().Context(), a.caller(c), c.Param("filename")); err != nil {
		return pageError(err)
	}
	return c.Redirect(http.StatusSeeOther, "/admin/gorseller/?msg="+url.QueryEscape("Görsel silindi."))
}

func (a *App) renderUploads(c echo.Context, msg string) error {
	return a.renderUploadsStatus(c, http.StatusOK, msg)
}

func (a *App) renderUploadsStatus(c echo.Context, code int, msg string) error {
	uploads, err := a.Content.ListUploads(c.Request().Context(), a.caller(c))
	if err != nil {
		return err
	}
	return RenderStatus(c, code, views.AdminUploads(a.adminPage(c, msg), uploads))
}
