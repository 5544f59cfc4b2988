// Package pagination содержит арифметику страниц и построение ссылок next/prev.
package pagination

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultPageSize - размер страницы, если в конфигурации не задан другой
const DefaultPageSize = 10

// Page описывает запрошенную страницу (1-indexed)
type Page struct {
	Number int
	Size   int
}

// New создает страницу; number < 1 приводится к 1, size < 1 - к DefaultPageSize
func New(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	return Page{Number: number, Size: size}
}

// ParseNumber разбирает значение query-параметра page.
// Пустая строка, нечисловое значение или число < 1 дают первую страницу.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Offset возвращает смещение первой записи страницы.
// Для номеров, при которых (Number-1)*Size не помещается в int, возвращает math.MaxInt:
// такая страница заведомо за пределами выборки.
func (p Page) Offset() int {
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

// Limit возвращает максимальное количество записей на странице
func (p Page) Limit() int {
	return p.Size
}

// HasNext - есть ли записи после последней записи текущей страницы.
// Сравнивается с числом страниц, а не произведение Number*Size, чтобы не переполнить int64.
func (p Page) HasNext(total int64) bool {
	if total <= 0 {
		return false
	}
	pages := (total-1)/int64(p.Size) + 1
	return int64(p.Number) < pages
}

// HasPrev - есть ли предыдущая страница
func (p Page) HasPrev() bool {
	return p.Number > 1
}

// Links содержит ссылки навигации; nil сериализуется в JSON null
type Links struct {
	Next *string
	Prev *string
}

// BuildLinks строит ссылки вида "<basePath>?page=N"
func (p Page) BuildLinks(basePath string, total int64) Links {
	var links Links
	if p.HasNext(total) {
		next := fmt.Sprintf("%s?page=%d", basePath, p.Number+1)
		links.Next = &next
	}
	if p.HasPrev() {
		prev := fmt.Sprintf("%s?page=%d", basePath, p.Number-1)
		links.Prev = &prev
	}
	return links
}
