package handler

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentUserID 读取鉴权中间件注入的用户 ID，强制鉴权路由上必然有值
func currentUserID(c *gin.Context) primitive.ObjectID {
	id, _ := primitive.ObjectIDFromHex(c.GetString("user_id"))
	return id
}

// maybeUserID 可选鉴权路由上读取访问者 ID，匿名时返回 nil
func maybeUserID(c *gin.Context) *primitive.ObjectID {
	hex := c.GetString("user_id")
	if hex == "" {
		return nil
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return nil
	}
	return &id
}

// pathObjectID 解析路径参数里的文档 ID
func pathObjectID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
