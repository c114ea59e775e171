package tests

import (
	"fmt"
	"testing"

	"fundamind/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chapterOneAnswers builds a submission with the given number of correct
// answers; the rest pick a deliberately wrong option.
func chapterOneAnswers(correct int) []map[string]interface{} {
	answers := make([]map[string]interface{}, 0, len(chapterOneQuestions))
	for i, q := range chapterOneQuestions {
		answer := q.CorrectAnswer
		if i >= correct {
			if answer == "a" {
				answer = "b"
			} else {
				answer = "a"
			}
		}
		answers = append(answers, map[string]interface{}{
			"question_id": q.ID,
			"answer":      answer,
		})
	}
	return answers
}

func TestSubmitChapterFirstCompletion(t *testing.T) {
	user, token := newTestUser("chapterfirst", 0)

	// 3 of 5 correct: score 60, xp max(20, 50*0.6)=30, coin floor(5*0.6)=3.
	resp, body := doRequest(t, "POST", fmt.Sprintf("/api/chapters/%d/submit", chapterOne.ID), token,
		map[string]interface{}{
			"answers":   chapterOneAnswers(3),
			"is_replay": false,
		})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := body["result"].(map[string]interface{})
	assert.Equal(t, float64(60), result["score"])
	assert.Equal(t, float64(3), result["correct_count"])
	assert.Equal(t, float64(5), result["total_questions"])
	assert.Equal(t, float64(30), result["xp_earned"])
	assert.Equal(t, float64(3), result["coin_earned"])
	assert.Equal(t, false, result["leveled_up"])
	assert.Equal(t, float64(1), result["new_level"])

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, 30, updated.XP)
	assert.Equal(t, 1, updated.Level)
	assert.Equal(t, 3, updated.Coin)

	var progress models.UserChapterProgress
	require.NoError(t, db.Where("user_id = ? AND chapter_id = ?", user.ID, chapterOne.ID).First(&progress).Error)
	assert.True(t, progress.Completed)
	assert.Equal(t, 60, progress.Score)
	assert.Equal(t, 30, progress.XPEarned)
	assert.Equal(t, 3, progress.CoinEarned)
	assert.Equal(t, 0, progress.XPReplayEarned)
	assert.Equal(t, 0, progress.CoinReplayEarned)

	// One answer row per submitted answer.
	var answerCount int64
	db.Model(&models.UserAnswer{}).Where("user_id = ? AND chapter_id = ?", user.ID, chapterOne.ID).Count(&answerCount)
	assert.Equal(t, int64(5), answerCount)
}

func TestSubmitChapterReplay(t *testing.T) {
	user, token := newTestUser("chapterreplay", 0)

	// First completion at 3/5.
	resp, _ := doRequest(t, "POST", fmt.Sprintf("/api/chapters/%d/submit", chapterOne.ID), token,
		map[string]interface{}{"answers": chapterOneAnswers(3)})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Replay at 5/5: base rewards 50/5 halve to 25/2; score display updates.
	resp, body := doRequest(t, "POST", fmt.Sprintf("/api/chapters/%d/submit", chapterOne.ID), token,
		map[string]interface{}{
			"answers":   chapterOneAnswers(5),
			"is_replay": true,
		})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := body["result"].(map[string]interface{})
	assert.Equal(t, float64(100), result["score"])
	assert.Equal(t, float64(25), result["xp_earned"])
	assert.Equal(t, float64(2), result["coin_earned"])

	var progress models.UserChapterProgress
	require.NoError(t, db.Where("user_id = ? AND chapter_id = ?", user.ID, chapterOne.ID).First(&progress).Error)
	assert.True(t, progress.Completed)
	assert.Equal(t, 100, progress.Score)
	// First-completion rewards are permanent; replays only accumulate.
	assert.Equal(t, 30, progress.XPEarned)
	assert.Equal(t, 3, progress.CoinEarned)
	assert.Equal(t, 25, progress.XPReplayEarned)
	assert.Equal(t, 2, progress.CoinReplayEarned)
}

func TestSubmitChapterReplayHalvesFloor(t *testing.T) {
	_, token := newTestUser("chapterfloor", 0)

	// Zero correct on replay: the 20 XP floor is halved to 10 after the fact.
	doRequest(t, "POST", fmt.Sprintf("/api/chapters/%d/submit", chapterOne.ID), token,
		map[string]interface{}{"answers": chapterOneAnswers(5)})

	resp, body := doRequest(t, "POST", fmt.Sprintf("/api/chapters/%d/submit", chapterOne.ID), token,
		map[string]interface{}{
			"answers":   chapterOneAnswers(0),
			"is_replay": true,
		})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := body["result"].(map[string]interface{})
	assert.Equal(t, float64(10), result["xp_earned"])
	assert.Equal(t, float64(0), result["coin_earned"])
}

func TestSubmitChapterLevelUp(t *testing.T) {
	user, token := newTestUser("chapterlevelup", 0)

	// Perfect run on a 150 XP chapter from level 1: level 2 with 50 XP left.
	resp, body := doRequest(t, "POST", fmt.Sprintf("/api/chapters/%d/submit", chapterTwo.ID), token,
		map[string]interface{}{
			"answers": []map[string]interface{}{
				{"question_id": chapterTwoQuestion.ID, "answer": "A"},
			},
		})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := body["result"].(map[string]interface{})
	assert.Equal(t, true, result["leveled_up"])
	assert.Equal(t, float64(2), result["new_level"])

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, 2, updated.Level)
	assert.Equal(t, 50, updated.XP)
	assert.Equal(t, 200, updated.XPNext)
}

func TestSubmitChapterUnknownChapter(t *testing.T) {
	_, token := newTestUser("chapter404", 0)

	resp, _ := doRequest(t, "POST", "/api/chapters/99999/submit", token,
		map[string]interface{}{"answers": []map[string]interface{}{}})

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSubmitChapterMalformedBody(t *testing.T) {
	_, token := newTestUser("chapter400", 0)

	// Missing answers list.
	resp, _ := doRequest(t, "POST", fmt.Sprintf("/api/chapters/%d/submit", chapterOne.ID), token,
		map[string]interface{}{"is_replay": false})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Answers of the wrong shape.
	resp, _ = doRequest(t, "POST", fmt.Sprintf("/api/chapters/%d/submit", chapterOne.ID), token,
		map[string]interface{}{"answers": "not-a-list"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetChapterHidesAnswers(t *testing.T) {
	_, token := newTestUser("chapterget", 0)

	resp, body := doRequest(t, "GET", fmt.Sprintf("/api/chapters/%d", chapterOne.ID), token, nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	questions := body["questions"].([]interface{})
	require.Len(t, questions, 5)
	for _, q := range questions {
		_, exposed := q.(map[string]interface{})["correct_answer"]
		assert.False(t, exposed)
	}
	assert.Equal(t, false, body["is_completed"])
}
