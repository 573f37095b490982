package echoapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/daakhpc/StudentAdmissionSystem/core"
	"github.com/daakhpc/StudentAdmissionSystem/core/admission"
	storagesvc "github.com/daakhpc/StudentAdmissionSystem/services/storage"
)

var (
	errFileRequired   = echo.NewHTTPError(http.StatusBadRequest, "a file is required")
	errImagesOnly     = "Please upload only image files."
	errSubmissionGone = echo.NewHTTPError(
		http.StatusNotFound, "Update failed. The submission could not be found or no data was changed.")
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	LoginResponse struct {
		Token string `json:"token"`
	}

	VerifyRequest struct {
		UserJSONURL string `json:"user_json_url" validate:"required,url"`
	}

	UploadResponse struct {
		URL string `json:"url"`
	}

	RestoreResponse struct {
		Restored int `json:"restored"`
	}
)

func (lr LoginRequest) Validate() error { return core.Validate.Struct(lr) }

func (vr VerifyRequest) Validate() error { return core.Validate.Struct(vr) }

type admissionApi struct {
	svc     admission.Service
	storage storagesvc.FileStorage
	client  *http.Client
}

func registerAdmissionAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc admission.Service,
	storage storagesvc.FileStorage,
) {
	api := admissionApi{
		svc:     svc,
		storage: storage,
		client:  &http.Client{Timeout: core.Conf.VerifyTimeout},
	}

	// un-authed endpoints (the public application form)
	g.POST("/verify", api.verify)
	g.POST("/uploads", api.upload)
	g.POST("/submissions", api.create)

	// admin endpoints
	ag := g.Group("/admin")
	ag.POST("/login", api.login)

	sg := ag.Group("/submissions", jwt, adminMiddleware())
	sg.GET("", api.query)
	sg.POST("", api.create)
	sg.GET("/:id", api.retrieve)
	sg.PUT("/:id", api.update)
	sg.DELETE("/:id", api.destroy)

	ag.GET("/backup", api.backup, jwt, adminMiddleware())
	ag.POST("/restore", api.restore, jwt, adminMiddleware())
}

// Handlers

func (api *admissionApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	claims, err := authenticate(data.Email, data.Password)
	if err != nil {
		return err
	}
	token, err := GenerateToken(claims)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

// verify exchanges the widget's result URL for the verified identity.
func (api *admissionApi) verify(ctx echo.Context) error {
	var data VerifyRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to VerifyRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx.Request().Context(), http.MethodGet, data.UserJSONURL, nil)
	if err != nil {
		return core.NewValidationError(errors.New("invalid verification URL"))
	}
	res, err := api.client.Do(req)
	if err != nil {
		return core.NewRemoteError("fetching verification data", err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode != http.StatusOK {
		return core.NewRemoteError("fetching verification data", errors.Errorf("unexpected status %d", res.StatusCode))
	}

	var ident admission.VerifiedIdentity
	if err := json.NewDecoder(res.Body).Decode(&ident); err != nil {
		return core.NewRemoteError("decoding verification data", err)
	}
	if err := core.Validate.Struct(ident); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, ident)
}

func (api *admissionApi) upload(ctx echo.Context) error {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return errFileRequired
	}
	src, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "opening upload")
	}
	defer func() { _ = src.Close() }()

	// trust the sniffed type over the client-provided header
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return errors.Wrap(err, "reading upload")
	}
	contentType := http.DetectContentType(head[:n])
	if !strings.HasPrefix(contentType, "image/") {
		return core.NewValidationError(nil, core.FieldError{Field: "file", Error: errImagesOnly})
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "rewinding upload")
	}

	url, err := api.storage.Upload(ctx.Request().Context(), fh.Filename, contentType, src)
	if err != nil {
		return errors.Wrap(err, "uploading file")
	}

	return ctx.JSON(http.StatusCreated, UploadResponse{URL: url})
}

func (api *admissionApi) create(ctx echo.Context) error {
	var data admission.SubmissionInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SubmissionInput")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sub, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating submission")
	}

	return ctx.JSON(http.StatusCreated, sub)
}

func (api *admissionApi) query(ctx echo.Context) error {
	var params admission.ListParams
	if err := ctx.Bind(&params); err != nil {
		return errors.Wrap(err, "binding to ListParams")
	}
	params.Clean(core.Conf.PageSize)

	subs, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying submissions")
	}

	return ctx.JSON(http.StatusOK, admission.ApplyListView(subs, params))
}

func (api *admissionApi) retrieve(ctx echo.Context) error {
	sub, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sub)
}

func (api *admissionApi) update(ctx echo.Context) error {
	var data admission.SubmissionInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SubmissionInput")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sub, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == admission.ErrNotFound {
			return errSubmissionGone
		}
		return errors.Wrap(err, "updating submission")
	}

	return ctx.JSON(http.StatusOK, sub)
}

func (api *admissionApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *admissionApi) backup(ctx echo.Context) error {
	data, filename, err := api.svc.Backup(ctx.Request().Context())
	if err != nil {
		if errors.Cause(err) == admission.ErrNoData {
			return echo.NewHTTPError(http.StatusNotFound, admission.ErrNoData.Error())
		}
		return errors.Wrap(err, "backing up submissions")
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, data)
}

func (api *admissionApi) restore(ctx echo.Context) error {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return errFileRequired
	}
	src, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "opening backup file")
	}
	defer func() { _ = src.Close() }()

	content, err := io.ReadAll(src)
	if err != nil {
		return errors.Wrap(err, "reading backup file")
	}

	count, err := api.svc.Restore(ctx.Request().Context(), content)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, RestoreResponse{Restored: count})
}
