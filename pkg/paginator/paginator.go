package paginator

import (
	"strconv"
	"strings"
)

// Page 定长窗口分页
//
// 页码不是整数时取第一页，小于 1 或超过最后一页时取最后一页。
// 没有数据时也有一页（空页）。
type Page struct {
	Number   int
	NumPages int
	PerPage  int
	Count    int64
}

func New(count int64, perPage int, page string) Page {
	if perPage <= 0 {
		perPage = 1
	}
	p := Page{PerPage: perPage, Count: count}

	p.NumPages = int((count + int64(perPage) - 1) / int64(perPage))
	if p.NumPages < 1 {
		p.NumPages = 1
	}

	number, err := strconv.Atoi(strings.TrimSpace(page))
	switch {
	case err != nil:
		p.Number = 1
	case number < 1 || number > p.NumPages:
		p.Number = p.NumPages
	default:
		p.Number = number
	}
	return p
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

func (p Page) Limit() int {
	return p.PerPage
}

func (p Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}
