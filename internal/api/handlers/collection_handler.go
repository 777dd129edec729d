package handlers

import (
	"foodgram-backend/domain"
	"foodgram-backend/internal/api/presenters"
	"foodgram-backend/pkg/collection"
	"foodgram-backend/pkg/shoppinglist"

	"github.com/gofiber/fiber/v2"
)

type (
	CollectionHandler interface {
		AddFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
		AddToShoppingCart(c *fiber.Ctx) error
		RemoveFromShoppingCart(c *fiber.Ctx) error
		DownloadShoppingCart(c *fiber.Ctx) error
	}

	collectionHandler struct {
		collectionService   collection.CollectionService
		shoppingListService shoppinglist.ShoppingListService
	}
)

func NewCollectionHandler(collectionService collection.CollectionService, shoppingListService shoppinglist.ShoppingListService) CollectionHandler {
	return &collectionHandler{
		collectionService:   collectionService,
		shoppingListService: shoppingListService,
	}
}

func (h *collectionHandler) add(c *fiber.Ctx, kind domain.CollectionKind) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	res, err := h.collectionService.Add(c.Context(), kind, userID, recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToCollection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddToCollection)
}

func (h *collectionHandler) remove(c *fiber.Ctx, kind domain.CollectionKind) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.collectionService.Remove(c.Context(), kind, userID, recipeID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveFromCollection, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessRemoveFromCollection)
}

func (h *collectionHandler) AddFavorite(c *fiber.Ctx) error {
	return h.add(c, domain.CollectionFavorite)
}

func (h *collectionHandler) RemoveFavorite(c *fiber.Ctx) error {
	return h.remove(c, domain.CollectionFavorite)
}

func (h *collectionHandler) AddToShoppingCart(c *fiber.Ctx) error {
	return h.add(c, domain.CollectionShoppingCart)
}

func (h *collectionHandler) RemoveFromShoppingCart(c *fiber.Ctx) error {
	return h.remove(c, domain.CollectionShoppingCart)
}

func (h *collectionHandler) DownloadShoppingCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	list, err := h.shoppingListService.BuildShoppingList(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, err)
	}

	text := h.shoppingListService.RenderShoppingList(list)

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="shopping_list.txt"`)
	return c.Status(fiber.StatusOK).SendString(text)
}
