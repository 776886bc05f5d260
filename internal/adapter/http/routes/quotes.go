package routes

import (
	"rentpulse/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.PATCH("/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/reject", quoteHandler.RejectQuote)
		quotes.PATCH("/cancel", quoteHandler.CancelQuote)
		quotes.PATCH("/:quote_id/reprice", quoteHandler.RepriceQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuoteByID)
		quotes.GET("/issue/:issue_id", quoteHandler.GetQuoteByIssueID)
	}
}
