package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/trivia-api/internal/domain/entity"
	"github.com/yourusername/trivia-api/internal/handler/dto"
	"github.com/yourusername/trivia-api/internal/middleware"
)

var exportHeaders = []string{"ID", "Question", "Answer", "Category ID", "Category", "Difficulty"}

// ExportQuestions выгружает все вопросы в CSV или Excel формате
// GET /questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "format must be csv or xlsx"))
		return
	}

	// Все вопросы без пагинации
	questions, err := h.questionService.ExportQuestions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, filename)
	default:
		h.exportCSV(c, questions, filename)
	}
}

// exportCSV выгружает вопросы в CSV с правильным экранированием спецсимволов.
// Статус уже отправлен, поэтому ошибки записи только логируются.
func (h *QuestionHandler) exportCSV(c *gin.Context, questions []entity.QuestionWithCategory, filename string) {
	log := middleware.Logger(c)

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	// BOM для корректного отображения UTF-8 в Excel
	if _, err := c.Writer.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		log.WithError(err).Error("failed to write csv to response")
		return
	}

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(exportHeaders); err != nil {
		log.WithError(err).Error("failed to write csv headers")
		return
	}
	for _, q := range questions {
		err := writer.Write([]string{
			strconv.FormatUint(uint64(q.ID), 10),
			sanitizeForExcel(q.Question.Question),
			sanitizeForExcel(q.Answer),
			strconv.FormatUint(uint64(q.Category), 10),
			sanitizeForExcel(q.CategoryType),
			strconv.Itoa(q.Difficulty),
		})
		if err != nil {
			log.WithError(err).WithField("question_id", q.ID).Error("failed to write csv row")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.WithError(err).Error("failed to write csv to response")
	}
}

// exportXLSX выгружает вопросы в Excel через StreamWriter
func (h *QuestionHandler) exportXLSX(c *gin.Context, questions []entity.QuestionWithCategory, filename string) {
	log := middleware.Logger(c)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		respondError(c, fmt.Errorf("rename sheet: %w", err))
		return
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		respondError(c, fmt.Errorf("create stream writer: %w", err))
		return
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, name := range exportHeaders {
		headers[i] = name
	}
	if err := sw.SetRow("A1", headers); err != nil {
		respondError(c, fmt.Errorf("write headers: %w", err))
		return
	}

	for i, q := range questions {
		cell, _ := excelize.CoordinatesToCellName(1, i+2) // 1 строка - заголовки
		row := []interface{}{q.ID, sanitizeForExcel(q.Question.Question), sanitizeForExcel(q.Answer), q.Category, sanitizeForExcel(q.CategoryType), q.Difficulty}
		if err := sw.SetRow(cell, row); err != nil {
			respondError(c, fmt.Errorf("write row %d: %w", i+2, err))
			return
		}
	}

	if err := sw.Flush(); err != nil {
		respondError(c, fmt.Errorf("flush xlsx: %w", err))
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.WithError(err).Error("failed to write xlsx to response")
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
