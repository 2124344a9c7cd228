package paginator

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

type Paginate struct {
	From, Size, Page int
}

func New(c *gin.Context) Paginate {
	sizeStr := c.DefaultQuery("page_size", "10")
	pageStr := c.DefaultQuery("page", "1")

	size, _ := strconv.Atoi(sizeStr)
	page, _ := strconv.Atoi(pageStr)

	if size <= 0 {
		size = 10
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	if page <= 0 {
		page = 1
	}

	return Paginate{
		From: (page - 1) * size,
		Size: size,
		Page: page,
	}
}
