package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetGroupID(ctx *gin.Context) (uint64, error) {
	groupIDStr := ctx.Param("groupId")

	if groupIDStr == "" {
		return 0, errors.New("Group ID not found")
	}

	groupID, err := strconv.ParseUint(groupIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Group ID")
	}

	return groupID, nil
}

func GetMemberID(ctx *gin.Context) (uint64, error) {
	memberIDStr := ctx.Param("memberId")

	if memberIDStr == "" {
		return 0, errors.New("Member ID not found")
	}

	memberID, err := strconv.ParseUint(memberIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Member ID")
	}

	return memberID, nil
}

func GetIDParam(ctx *gin.Context) (uint64, error) {
	idStr := ctx.Param("id")

	if idStr == "" {
		return 0, errors.New("ID not found")
	}

	id, err := strconv.ParseUint(idStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid ID")
	}

	return id, nil
}
