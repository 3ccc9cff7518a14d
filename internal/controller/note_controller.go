package controller

import (
	"errors"
	"strconv"

	"musichub-be/internal/dto"
	"musichub-be/internal/pkg/logger"
	"musichub-be/internal/pkg/serverutils"
	"musichub-be/internal/service"
	"musichub-be/pkg/search"

	"github.com/gofiber/fiber/v2"
)

// Accepted spellings of the list filters. Each key is also read in its
// bracketed array form (tags[]).
var (
	tagParamKeys           = []string{"tags", "tagsIds"}
	timeSignatureParamKeys = []string{"time_signature", "timeSignatures", "timeSignaturesIds"}
	sizeParamKeys          = []string{"sizes", "size"}
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ListByComposer(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	TrackView(ctx *fiber.Ctx) error
	ToggleLike(ctx *fiber.Ctx) error
	ListFavorites(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
	authorize   fiber.Handler
	logger      logger.ILogger
}

func NewNoteController(noteService service.INoteService, authorize fiber.Handler, sysLogger logger.ILogger) INoteController {
	return &noteController{
		noteService: noteService,
		authorize:   authorize,
		logger:      sysLogger,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	r.Get("/songs", c.List)
	r.Get("/songs/:id", c.Show)
	r.Get("/composers/:composerId/songs", c.ListByComposer)

	r.Get("/my-songs", c.authorize, c.ListMine)
	r.Get("/my-favorite-songs", c.authorize, c.ListFavorites)
	r.Post("/songs/:id/view", c.authorize, c.TrackView)
	r.Post("/songs/:id/like", c.authorize, c.ToggleLike)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	return c.list(ctx, nil)
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Show(ctx.UserContext(), id)
	if err != nil {
		return c.fail("Show", err)
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *noteController) ListByComposer(ctx *fiber.Ctx) error {
	composerId, ok := search.ParseId(ctx.Params("composerId"))
	if !ok || serverutils.ValidateRequest(dto.ComposerIdParam{ComposerId: composerId}) != nil {
		return fiber.NewError(fiber.StatusBadRequest, serverutils.MessageInvalidId)
	}
	return c.list(ctx, &composerId)
}

func (c *noteController) ListMine(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserId(ctx)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, serverutils.MessageUnauthorized)
	}
	return c.list(ctx, &userId)
}

func (c *noteController) TrackView(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserId(ctx)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, serverutils.MessageUnauthorized)
	}
	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.TrackView(ctx.UserContext(), userId, id)
	if err != nil {
		return c.fail("TrackView", err)
	}

	return ctx.JSON(res)
}

func (c *noteController) ToggleLike(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserId(ctx)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, serverutils.MessageUnauthorized)
	}
	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.ToggleLike(ctx.UserContext(), userId, id)
	if err != nil {
		return c.fail("ToggleLike", err)
	}

	return ctx.JSON(res)
}

func (c *noteController) ListFavorites(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserId(ctx)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, serverutils.MessageUnauthorized)
	}

	res, err := c.noteService.ListFavorites(ctx.UserContext(), userId, pageRequest(ctx))
	if err != nil {
		return c.fail("ListFavorites", err)
	}

	return ctx.JSON(res)
}

func (c *noteController) list(ctx *fiber.Ctx, ownerId *int64) error {
	req := &dto.NoteListRequest{
		PageRequest: pageRequest(ctx),
		Filters: search.ParseFilters(search.RawFilters{
			Tags:           queryValues(ctx, tagParamKeys...),
			TimeSignatures: queryValues(ctx, timeSignatureParamKeys...),
			Sizes:          queryValues(ctx, sizeParamKeys...),
			Query:          ctx.Query("query"),
		}),
		OwnerId: ownerId,
	}

	res, err := c.noteService.List(ctx.UserContext(), req)
	if err != nil {
		return c.fail("List", err)
	}

	return ctx.JSON(res)
}

// fail maps service errors onto HTTP errors. Unexpected errors are logged
// here and reach the client only as a bare 500.
func (c *noteController) fail(action string, err error) error {
	if errors.Is(err, service.ErrNoteNotFound) {
		return fiber.NewError(fiber.StatusNotFound, serverutils.MessageNotFound)
	}

	c.logger.Error("NOTE", action+" failed", map[string]interface{}{
		"error": err.Error(),
	})
	return fiber.NewError(fiber.StatusInternalServerError, serverutils.MessageError)
}

func noteIdParam(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || serverutils.ValidateRequest(dto.NoteIdParam{Id: id}) != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, serverutils.MessageInvalidId)
	}
	return id, nil
}

func pageRequest(ctx *fiber.Ctx) dto.PageRequest {
	return dto.NewPageRequest(ctx.Query("page"), ctx.Query("limit"))
}

// queryValues collects every value of the given keys, repeated keys and
// bracketed forms included, in request order per key.
func queryValues(ctx *fiber.Ctx, keys ...string) []string {
	args := ctx.Context().QueryArgs()
	var values []string
	for _, key := range keys {
		for _, k := range []string{key, key + "[]"} {
			for _, v := range args.PeekMulti(k) {
				values = append(values, string(v))
			}
		}
	}
	return values
}
