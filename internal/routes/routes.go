package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nobiai/deletewa/internal/handlers"
	"github.com/nobiai/deletewa/internal/repository"
	"github.com/nobiai/deletewa/internal/services"
)

func RegisterRoutes(app *fiber.App, db *pgxpool.Pool) {
	contactRepo := repository.NewContactRepository(db)
	chatRepo := repository.NewChatRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	chatService := services.NewChatService(chatRepo)
	messageService := services.NewMessageService(messageRepo, chatRepo)
	contactService := services.NewContactService(contactRepo)
	statsService := services.NewStatsService(messageRepo, chatRepo)
	seedService := services.NewSeedService(contactRepo, chatRepo, messageRepo)

	chatHandler := handlers.NewChatHandler(chatService)
	messageHandler := handlers.NewMessageHandler(messageService)
	contactHandler := handlers.NewContactHandler(contactService)
	statsHandler := handlers.NewStatsHandler(statsService)
	seedHandler := handlers.NewSeedHandler(seedService)

	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "WhatsApp Deleted Messages Monitor API"})
	})

	api.Post("/chats", chatHandler.CreateChat)
	api.Get("/chats", chatHandler.ListChats)
	api.Get("/chats/:id", chatHandler.GetChat)

	api.Post("/messages", messageHandler.CreateMessage)
	api.Get("/messages", messageHandler.ListMessages)
	api.Get("/messages/deleted", messageHandler.ListDeletedMessages)
	api.Put("/messages/:id/delete", messageHandler.DeleteMessage)

	api.Get("/stats", statsHandler.GetStats)

	api.Post("/contacts", contactHandler.CreateContact)
	api.Get("/contacts", contactHandler.ListContacts)

	api.Post("/init-sample-data", seedHandler.InitSampleData)
}
