package service

import (
	"errors"
	"testing"

	"drive_safe_backend/internal/repository"
	"drive_safe_backend/internal/util"

	"gorm.io/gorm"
)

func newTestService(db *gorm.DB) *TestService {
	return NewTestService(
		repository.NewAdviceRepository(db),
		repository.NewUserRepository(db),
		repository.NewTestQuestionRepository(db),
		repository.NewTestPassedRepository(db),
		repository.NewScoreRepository(db),
		db,
	)
}

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name     string
		items    []SubmissionItem
		wantErrs int
	}{
		{"valid", []SubmissionItem{{QuestionID: 1, Answer: "A"}, {QuestionID: 2, Answer: "b"}}, 0},
		{"empty list", nil, 0},
		{"missing question id", []SubmissionItem{{Answer: "A"}}, 1},
		{"empty answer", []SubmissionItem{{QuestionID: 1}}, 1},
		{"answer too long", []SubmissionItem{{QuestionID: 1, Answer: "AB"}}, 1},
		{"both fields bad", []SubmissionItem{{Answer: "AB"}}, 2},
		{"mixed valid and invalid", []SubmissionItem{{QuestionID: 1, Answer: "A"}, {Answer: ""}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubmission(tt.items)
			if tt.wantErrs == 0 {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var vErr *util.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(vErr.Items) != tt.wantErrs {
				t.Fatalf("expected %d item errors, got %d: %v", tt.wantErrs, len(vErr.Items), vErr.Items)
			}
		})
	}
}

func TestCheckTestAllCorrect(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)

	user := createTestUser(t, db, "driver")
	advice := createTestAdvice(t, db, "winter driving", 25)
	q1 := createTestQuestion(t, db, advice.ID, "A")
	q2 := createTestQuestion(t, db, advice.ID, "B")

	// 字母比较不区分大小写，提交顺序也无关
	result, err := svc.CheckTest(user.ID, advice.ID, []SubmissionItem{
		{QuestionID: q2.ID, Answer: "b"},
		{QuestionID: q1.ID, Answer: "a"},
	})
	if err != nil {
		t.Fatalf("CheckTest: %v", err)
	}

	if !result.Passed {
		t.Fatal("expected test passed")
	}
	if result.Record == nil || result.Record.ID == 0 {
		t.Fatal("expected a persisted TestPassed record")
	}
	if result.Record.UserID != user.ID || result.Record.AdviceID != advice.ID || !result.Record.Passed {
		t.Fatalf("unexpected record: %+v", result.Record)
	}

	if got := userScore(t, db, user.ID); got != 25 {
		t.Fatalf("expected score 25, got %d", got)
	}
	if got := passedCount(t, db, user.ID, advice.ID); got != 1 {
		t.Fatalf("expected 1 passed record, got %d", got)
	}
}

func TestCheckTestIncorrectAnswers(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)

	user := createTestUser(t, db, "driver")
	advice := createTestAdvice(t, db, "night driving", 10)
	q1 := createTestQuestion(t, db, advice.ID, "A")
	q2 := createTestQuestion(t, db, advice.ID, "B")
	q3 := createTestQuestion(t, db, advice.ID, "C")

	result, err := svc.CheckTest(user.ID, advice.ID, []SubmissionItem{
		{QuestionID: q1.ID, Answer: "A"},
		{QuestionID: q2.ID, Answer: "C"},
		{QuestionID: q3.ID, Answer: "A"},
	})
	if err != nil {
		t.Fatalf("CheckTest: %v", err)
	}

	if result.Passed {
		t.Fatal("expected test failed")
	}
	if len(result.IncorrectAnswers) != 2 {
		t.Fatalf("expected 2 incorrect answers, got %v", result.IncorrectAnswers)
	}
	want := map[uint]bool{q2.ID: true, q3.ID: true}
	for _, id := range result.IncorrectAnswers {
		if !want[id] {
			t.Fatalf("unexpected incorrect question id %d", id)
		}
	}

	// 未通过时不产生任何写入
	if got := userScore(t, db, user.ID); got != 0 {
		t.Fatalf("expected score 0, got %d", got)
	}
	if got := passedCount(t, db, user.ID, advice.ID); got != 0 {
		t.Fatalf("expected no passed records, got %d", got)
	}
}

func TestCheckTestPreconditions(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)

	user := createTestUser(t, db, "driver")
	advice := createTestAdvice(t, db, "highway", 5)
	q1 := createTestQuestion(t, db, advice.ID, "A")

	other := createTestAdvice(t, db, "city", 5)
	otherQ := createTestQuestion(t, db, other.ID, "A")

	t.Run("advice not found", func(t *testing.T) {
		_, err := svc.CheckTest(user.ID, 9999, nil)
		if !errors.Is(err, util.ErrAdviceNotFound) {
			t.Fatalf("expected ErrAdviceNotFound, got %v", err)
		}
	})

	t.Run("user not found", func(t *testing.T) {
		_, err := svc.CheckTest(9999, advice.ID, nil)
		if !errors.Is(err, util.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("advice checked before user", func(t *testing.T) {
		_, err := svc.CheckTest(9999, 9999, nil)
		if !errors.Is(err, util.ErrAdviceNotFound) {
			t.Fatalf("expected ErrAdviceNotFound, got %v", err)
		}
	})

	t.Run("wrong number of answers", func(t *testing.T) {
		_, err := svc.CheckTest(user.ID, advice.ID, []SubmissionItem{
			{QuestionID: q1.ID, Answer: "A"},
			{QuestionID: q1.ID, Answer: "A"},
		})
		if !errors.Is(err, util.ErrAnswerCountMismatch) {
			t.Fatalf("expected ErrAnswerCountMismatch, got %v", err)
		}
	})

	t.Run("question from another advice", func(t *testing.T) {
		var unknownQ *util.UnknownQuestionError
		_, err := svc.CheckTest(user.ID, advice.ID, []SubmissionItem{
			{QuestionID: otherQ.ID, Answer: "A"},
		})
		if !errors.As(err, &unknownQ) {
			t.Fatalf("expected UnknownQuestionError, got %v", err)
		}
		if unknownQ.QuestionID != otherQ.ID {
			t.Fatalf("expected question id %d in error, got %d", otherQ.ID, unknownQ.QuestionID)
		}
	})
}

func TestCheckTestDuplicateQuestionReference(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)

	user := createTestUser(t, db, "driver")
	advice := createTestAdvice(t, db, "maintenance", 5)
	q1 := createTestQuestion(t, db, advice.ID, "A")
	createTestQuestion(t, db, advice.ID, "B")

	// 同一题引用两次：第二次引用时该题已从剩余池中移除
	var unknownQ *util.UnknownQuestionError
	_, err := svc.CheckTest(user.ID, advice.ID, []SubmissionItem{
		{QuestionID: q1.ID, Answer: "A"},
		{QuestionID: q1.ID, Answer: "A"},
	})
	if !errors.As(err, &unknownQ) {
		t.Fatalf("expected UnknownQuestionError, got %v", err)
	}

	if got := passedCount(t, db, user.ID, advice.ID); got != 0 {
		t.Fatalf("expected no passed records, got %d", got)
	}
}

func TestCheckTestAlreadyPassed(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)

	user := createTestUser(t, db, "driver")
	advice := createTestAdvice(t, db, "winter", 15)
	q1 := createTestQuestion(t, db, advice.ID, "C")

	items := []SubmissionItem{{QuestionID: q1.ID, Answer: "C"}}

	if _, err := svc.CheckTest(user.ID, advice.ID, items); err != nil {
		t.Fatalf("first attempt: %v", err)
	}

	_, err := svc.CheckTest(user.ID, advice.ID, items)
	if !errors.Is(err, util.ErrTestAlreadyPassed) {
		t.Fatalf("expected ErrTestAlreadyPassed, got %v", err)
	}

	// 分数只加一次
	if got := userScore(t, db, user.ID); got != 15 {
		t.Fatalf("expected score 15, got %d", got)
	}
	if got := passedCount(t, db, user.ID, advice.ID); got != 1 {
		t.Fatalf("expected 1 passed record, got %d", got)
	}
}

func TestCheckTestIndependentPerUserAndAdvice(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	advice1 := createTestAdvice(t, db, "advice one", 10)
	advice2 := createTestAdvice(t, db, "advice two", 20)
	q1 := createTestQuestion(t, db, advice1.ID, "A")
	q2 := createTestQuestion(t, db, advice2.ID, "B")

	if _, err := svc.CheckTest(alice.ID, advice1.ID, []SubmissionItem{{QuestionID: q1.ID, Answer: "A"}}); err != nil {
		t.Fatalf("alice advice1: %v", err)
	}
	if _, err := svc.CheckTest(alice.ID, advice2.ID, []SubmissionItem{{QuestionID: q2.ID, Answer: "B"}}); err != nil {
		t.Fatalf("alice advice2: %v", err)
	}
	if _, err := svc.CheckTest(bob.ID, advice1.ID, []SubmissionItem{{QuestionID: q1.ID, Answer: "A"}}); err != nil {
		t.Fatalf("bob advice1: %v", err)
	}

	if got := userScore(t, db, alice.ID); got != 30 {
		t.Fatalf("expected alice score 30, got %d", got)
	}
	if got := userScore(t, db, bob.ID); got != 10 {
		t.Fatalf("expected bob score 10, got %d", got)
	}
}

func TestCheckTestNoQuestions(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)

	user := createTestUser(t, db, "driver")
	advice := createTestAdvice(t, db, "no questions yet", 5)

	// 没有题目的建议：空提交即全对
	result, err := svc.CheckTest(user.ID, advice.ID, nil)
	if err != nil {
		t.Fatalf("CheckTest: %v", err)
	}
	if !result.Passed {
		t.Fatal("expected empty test to pass")
	}

	_, err = svc.CheckTest(user.ID, advice.ID, []SubmissionItem{{QuestionID: 1, Answer: "A"}})
	if !errors.Is(err, util.ErrTestAlreadyPassed) {
		t.Fatalf("expected ErrTestAlreadyPassed, got %v", err)
	}
}

func TestRecordPassUniqueIndexBackstop(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)

	user := createTestUser(t, db, "driver")
	advice := createTestAdvice(t, db, "advice", 10)

	if _, err := svc.recordPass(user.ID, advice.ID, advice.TestPoints); err != nil {
		t.Fatalf("first recordPass: %v", err)
	}
	if _, err := svc.recordPass(user.ID, advice.ID, advice.TestPoints); !errors.Is(err, util.ErrTestAlreadyPassed) {
		t.Fatalf("expected ErrTestAlreadyPassed, got %v", err)
	}

	if got := userScore(t, db, user.ID); got != 10 {
		t.Fatalf("expected score 10, got %d", got)
	}
}
