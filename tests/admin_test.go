package tests

import (
	"fmt"
	"testing"

	"fundamind/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminCreateQuest(t *testing.T) {
	token := newAdminToken("contentadmin")

	resp, body := doRequest(t, "POST", "/api/admin/quests", token, map[string]interface{}{
		"Title":      "Menara Pecahan",
		"Category":   "story",
		"XPReward":   80,
		"CoinReward": 40,
	})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	quest := body["quest"].(map[string]interface{})
	assert.Equal(t, "Menara Pecahan", quest["Title"])

	var stored models.Quest
	require.NoError(t, db.Where("title = ?", "Menara Pecahan").First(&stored).Error)
	assert.Equal(t, 80, stored.XPReward)
}

func TestAdminCreateQuestRejectsMissingTitle(t *testing.T) {
	token := newAdminToken("contentadmin2")

	resp, _ := doRequest(t, "POST", "/api/admin/quests", token, map[string]interface{}{
		"Category": "story",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAdminAddChapterAndQuestion(t *testing.T) {
	token := newAdminToken("contentadmin3")

	resp, body := doRequest(t, "POST", fmt.Sprintf("/api/admin/quests/%d/chapters", storyQuest.ID), token,
		map[string]interface{}{
			"Number":     9,
			"Title":      "Lembah Pembagian",
			"XPReward":   60,
			"CoinReward": 6,
		})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	chapter := body["chapter"].(map[string]interface{})
	chapterID := uint(chapter["ID"].(float64))

	resp, _ = doRequest(t, "POST", fmt.Sprintf("/api/admin/chapters/%d/questions", chapterID), token,
		map[string]interface{}{
			"Prompt":        "12 / 4 = ?",
			"OptionA":       "3",
			"OptionB":       "4",
			"CorrectAnswer": "a",
		})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	db.Model(&models.QuestQuestion{}).Where("chapter_id = ?", chapterID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAdminRoutesRejectRegularUsers(t *testing.T) {
	_, token := newTestUser("notanadmin", 0)

	resp, _ := doRequest(t, "POST", "/api/admin/quests", token, map[string]interface{}{
		"Title": "Sneaky Quest",
	})

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
