package server

import (
	"polyglot/internal/middleware"
	"polyglot/internal/response"
	"polyglot/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListPosts handles GET /api/v1/posts
// @Summary List posts
// @Description Posts of every status, newest first. Paging input is clamped and never rejected.
// @Tags posts
// @Produce json
// @Param page query int false "Page number (min 1)" default(1)
// @Param per_page query int false "Items per page (1-100)" default(20)
// @Success 200 {object} response.PaginatedEnvelope[models.Post]
// @Failure 500 {object} response.ErrorEnvelope
// @Router /posts [get]
func (s *Server) ListPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", service.DefaultPerPage)

	result, err := s.content.ListPosts(c.UserContext(), page, perPage)
	if err != nil {
		return respondWithError(c, err)
	}

	return c.JSON(response.Paginated(
		result.Items,
		response.NewPagination(result.Page, result.PerPage, result.Total),
		middleware.RequestID(c),
	))
}

// GetPostMeta handles GET /api/v1/post-meta/:id
// @Summary Get post metadata
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} response.SuccessEnvelope[models.Post]
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /post-meta/{id} [get]
func (s *Server) GetPostMeta(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.content.GetPostMeta(c.UserContext(), id)
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(response.Success(post, middleware.RequestID(c)))
}

// GetContent handles GET /api/v1/content/:referenceId
// @Summary Get canonical content
// @Tags content
// @Produce json
// @Param referenceId path string true "Content reference ID"
// @Success 200 {object} response.SuccessEnvelope[models.Content]
// @Failure 404 {object} response.ErrorEnvelope
// @Router /content/{referenceId} [get]
func (s *Server) GetContent(c *fiber.Ctx) error {
	content, err := s.content.GetContent(c.UserContext(), c.Params("referenceId"))
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(response.Success(content, middleware.RequestID(c)))
}

// GetTranslationGroup handles GET /api/v1/translations/group/:groupId
// @Summary Get a translation group
// @Description The group with its entries keyed by language. An absent language was never translated.
// @Tags translations
// @Produce json
// @Param groupId path string true "Translation group ID"
// @Success 200 {object} response.SuccessEnvelope[models.TranslationGroup]
// @Failure 404 {object} response.ErrorEnvelope
// @Router /translations/group/{groupId} [get]
func (s *Server) GetTranslationGroup(c *fiber.Ctx) error {
	group, err := s.content.GetTranslationGroup(c.UserContext(), c.Params("groupId"))
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(response.Success(group, middleware.RequestID(c)))
}

// GetTranslatedContent handles GET /api/v1/translations/content/:postId/:language
// @Summary Get translated content
// @Description Exact (post, language) content. The default language is never substituted.
// @Tags translations
// @Produce json
// @Param postId path int true "Language-specific post ID"
// @Param language path string true "Language code" Enums(en, fr, de, es, it, cs, pl, jp)
// @Success 200 {object} response.SuccessEnvelope[models.TranslatedContent]
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /translations/content/{postId}/{language} [get]
func (s *Server) GetTranslatedContent(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return nil
	}

	content, err := s.content.GetTranslatedContent(c.UserContext(), postID, c.Params("language"))
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(response.Success(content, middleware.RequestID(c)))
}

// GetLocalizedPost handles GET /api/v1/posts/:id/localized/:language
// @Summary Get a post in one language
// @Description Post metadata merged with the language's entry and content, plus every available translation.
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Param language path string true "Language code" Enums(en, fr, de, es, it, cs, pl, jp)
// @Success 200 {object} response.SuccessEnvelope[service.LocalizedPost]
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /posts/{id}/localized/{language} [get]
func (s *Server) GetLocalizedPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	view, err := s.content.GetLocalizedPost(c.UserContext(), id, c.Params("language"))
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(response.Success(view, middleware.RequestID(c)))
}

// GetLanguages handles GET /api/v1/languages
// @Summary List supported languages
// @Tags languages
// @Produce json
// @Success 200 {object} response.SuccessEnvelope[service.LanguageCatalogue]
// @Router /languages [get]
func (s *Server) GetLanguages(c *fiber.Ctx) error {
	return c.JSON(response.Success(s.content.Languages(), middleware.RequestID(c)))
}
