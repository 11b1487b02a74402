package util

import (
	"Vidstream/internal/pkg/consts"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParsePagination 解析分页参数，缺省第一页十条
func ParsePagination(c *gin.Context) (pageNum, pageSize int64) {
	pageNum, err := strconv.ParseInt(c.Query("pageNum"), 10, 64)
	if err != nil || pageNum < 1 {
		pageNum = 1
	}
	pageSize, err = strconv.ParseInt(c.Query("pageSize"), 10, 64)
	if err != nil || pageSize < 1 {
		pageSize = consts.DefaultPageSize
	}
	return pageNum, pageSize
}

// ObjectIDsToHex 将 ObjectID 列表转为十六进制字符串列表
func ObjectIDsToHex(ids []primitive.ObjectID) []string {
	hexes := make([]string, 0, len(ids))
	for _, id := range ids {
		hexes = append(hexes, id.Hex())
	}
	return hexes
}

// HexToObjectIDs 将十六进制字符串列表转为 ObjectID 列表，非法项跳过
func HexToObjectIDs(hexes []string) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// PtrString 用于将 string 转换为 *string
func PtrString(s string) *string {
	return &s
}
