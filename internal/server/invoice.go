package server

import (
	"fmt"
	"net/http"
	"strconv"

	invoicedomain "github.com/billcraft/billcraft/internal/invoice/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListInvoices(c *gin.Context) {
	resp, err := s.invoiceSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GenerateInvoice runs the full workflow. With sendEmail=true the PDF goes
// to the client's inbox and the caller gets a confirmation message; without
// it, the raw PDF bytes come back for preview. Both paths write the same
// ledger row shape.
func (s *Server) GenerateInvoice(c *gin.Context) {
	var req invoicedomain.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	sendEmail, _ := strconv.ParseBool(c.DefaultQuery("sendEmail", "false"))

	resp, err := s.invoiceSvc.Generate(c.Request.Context(), req, sendEmail)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if sendEmail {
		c.JSON(http.StatusOK, gin.H{"message": "Invoice generated and sent successfully!"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", "Invoice-"+resp.Invoice.Number+".pdf"))
	c.Data(http.StatusOK, "application/pdf", resp.PDF)
}
