package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow/db"
	"github.com/taskflow-dev/taskflow/internal/models"
	"github.com/taskflow-dev/taskflow/internal/utils"
	"gorm.io/gorm"
)

type CreateMemberRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListMembers is join-enforced: an unowned or missing group yields an empty
// array, indistinguishable from a group with no members.
func ListMembers(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	groupID, err := utils.GetGroupID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	members := []models.Member{}

	if err := db.DB.Joins("JOIN groups ON groups.id = members.group_id").
		Where("members.group_id = ? AND groups.owner_id = ?", groupID, userID).
		Find(&members).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	ctx.JSON(http.StatusOK, members)
}

func CreateMember(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	groupID, err := utils.GetGroupID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body CreateMemberRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var member models.Member

	// Ownership probe and insert run in one transaction so the group cannot
	// change hands between the two statements.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var group models.Group

		if err := tx.Where("id = ? AND owner_id = ?", groupID, userID).First(&group).Error; err != nil {
			return err
		}

		member = models.Member{
			GroupID: group.ID,
			Name:    body.Name,
		}

		return tx.Create(&member).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	ctx.JSON(http.StatusCreated, member)
}

func DeleteMember(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	memberID, err := utils.GetIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownedGroups := db.DB.Model(&models.Group{}).Select("id").Where("owner_id = ?", userID)

	result := db.DB.Where("id = ? AND group_id IN (?)", memberID, ownedGroups).Delete(&models.Member{})

	if result.Error != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	// Tasks of the deleted member are left in place; deletes never cascade.
	ctx.JSON(http.StatusOK, gin.H{"deleted": result.RowsAffected})
}
