package server

import (
	"net/http"

	app "github.com/Dahreau/buy-01/src/app"

	"github.com/gin-gonic/gin"
)

// GetProducts returns the full catalog enriched with media, best-effort per
// product: a failed media lookup gives that product an empty images array and
// never blanks the list.
func (a *AppHandler) GetProducts(c *gin.Context) {
	products, err := a.products.ListAll(c.Request.Context())
	if err != nil {
		surfaceError(c, err)
		return
	}
	a.aggregator.Aggregate(c.Request.Context(), products)
	c.JSON(http.StatusOK, gin.H{"status": "success", "payload": products})
}

func (a *AppHandler) GetProduct(c *gin.Context) {
	product, err := a.products.GetOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		surfaceError(c, err)
		return
	}
	a.aggregator.Aggregate(c.Request.Context(), []*app.Product{product})
	c.JSON(http.StatusOK, gin.H{"status": "success", "payload": product})
}

// GetMyProducts returns the enriched catalog filtered down to the products the
// current user owns. The filter is a pure predicate over the fetched list, no
// extra network calls.
func (a *AppHandler) GetMyProducts(c *gin.Context) {
	if _, ok := a.currentToken(c); !ok {
		c.IndentedJSON(http.StatusUnauthorized, gin.H{"message": "Login first"})
		return
	}
	userID, ok := a.session.CurrentUserID()
	if !ok {
		c.IndentedJSON(http.StatusUnauthorized, gin.H{"message": "Login first"})
		return
	}
	products, err := a.products.ListAll(c.Request.Context())
	if err != nil {
		surfaceError(c, err)
		return
	}
	owned := app.FilterOwned(products, userID)
	a.aggregator.Aggregate(c.Request.Context(), owned)
	c.JSON(http.StatusOK, gin.H{"status": "success", "payload": owned})
}

func (a *AppHandler) PostProduct(c *gin.Context) {
	token, ok := a.currentToken(c)
	if !ok {
		c.IndentedJSON(http.StatusUnauthorized, gin.H{"message": "Login first"})
		return
	}
	var requestBody app.ProductInput
	if err := c.BindJSON(&requestBody); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": "can not parse product body"})
		return
	}
	product, err := a.products.Create(c.Request.Context(), token, requestBody)
	if err != nil {
		surfaceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "payload": product})
}

func (a *AppHandler) PutProduct(c *gin.Context) {
	token, ok := a.currentToken(c)
	if !ok {
		c.IndentedJSON(http.StatusUnauthorized, gin.H{"message": "Login first"})
		return
	}
	var requestBody app.ProductInput
	if err := c.BindJSON(&requestBody); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": "can not parse product body"})
		return
	}
	product, err := a.products.Update(c.Request.Context(), token, c.Param("id"), requestBody)
	if err != nil {
		surfaceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "payload": product})
}

func (a *AppHandler) DeleteProduct(c *gin.Context) {
	token, ok := a.currentToken(c)
	if !ok {
		c.IndentedJSON(http.StatusUnauthorized, gin.H{"message": "Login first"})
		return
	}
	if err := a.products.Delete(c.Request.Context(), token, c.Param("id")); err != nil {
		surfaceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
