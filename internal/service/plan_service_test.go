package service

import (
	"testing"

	"github.com/media2net-app/toptiermen-sub008/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// In-memory fakes for the repository interfaces.

type fakePlanRepo struct {
	plans map[uint]*models.MealPlan
}

func (f *fakePlanRepo) Create(plan *models.MealPlan) (*models.MealPlan, error) {
	plan.ID = uint(len(f.plans) + 1)
	f.plans[plan.ID] = plan
	return plan, nil
}

func (f *fakePlanRepo) FindAll() ([]*models.MealPlan, error) {
	var out []*models.MealPlan
	for _, p := range f.plans {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePlanRepo) FindByID(id uint) (*models.MealPlan, error) {
	plan, ok := f.plans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return plan, nil
}

func (f *fakePlanRepo) FindActive() ([]*models.MealPlan, error) {
	var out []*models.MealPlan
	for _, p := range f.plans {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) Update(plan *models.MealPlan) error {
	f.plans[plan.ID] = plan
	return nil
}

func (f *fakePlanRepo) Delete(id uint) error {
	delete(f.plans, id)
	return nil
}

func (f *fakePlanRepo) Activate(id uint) error {
	if p, ok := f.plans[id]; ok {
		p.Active = true
	}
	return nil
}

type fakeProfileRepo struct {
	profiles map[uint]*models.UserProfile
}

func (f *fakeProfileRepo) Create(p *models.UserProfile) (*models.UserProfile, error) {
	p.ID = uint(len(f.profiles) + 1)
	f.profiles[p.UserID] = p
	return p, nil
}

func (f *fakeProfileRepo) FindByUserID(userID uint) (*models.UserProfile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) Update(p *models.UserProfile) error {
	f.profiles[p.UserID] = p
	return nil
}

type fakeEventRepo struct {
	events []*models.ScaleEvent
}

func (f *fakeEventRepo) Create(e *models.ScaleEvent) (*models.ScaleEvent, error) {
	f.events = append(f.events, e)
	return e, nil
}

func (f *fakeEventRepo) FindByUserID(userID uint) ([]*models.ScaleEvent, error) {
	var out []*models.ScaleEvent
	for _, e := range f.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) CountTotal() (int64, error) {
	return int64(len(f.events)), nil
}

type fakeIngredientRepo struct {
	ingredients []*models.Ingredient
}

func (f *fakeIngredientRepo) Create(i *models.Ingredient) (*models.Ingredient, error) {
	i.ID = uint(len(f.ingredients) + 1)
	f.ingredients = append(f.ingredients, i)
	return i, nil
}

func (f *fakeIngredientRepo) FindAll() ([]*models.Ingredient, error) {
	return f.ingredients, nil
}

func (f *fakeIngredientRepo) FindActive() ([]*models.Ingredient, error) {
	var out []*models.Ingredient
	for _, i := range f.ingredients {
		if i.Active {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeIngredientRepo) FindByID(id uint) (*models.Ingredient, error) {
	for _, i := range f.ingredients {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeIngredientRepo) FindByName(name string) (*models.Ingredient, error) {
	for _, i := range f.ingredients {
		if i.Name == name {
			return i, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeIngredientRepo) Update(i *models.Ingredient) error { return nil }
func (f *fakeIngredientRepo) Delete(id uint) error              { return nil }
func (f *fakeIngredientRepo) Count() (int64, error)             { return int64(len(f.ingredients)), nil }

func newTestPlanService() (*PlanService, *fakePlanRepo, *fakeProfileRepo, *fakeEventRepo) {
	planRepo := &fakePlanRepo{plans: make(map[uint]*models.MealPlan)}
	profileRepo := &fakeProfileRepo{profiles: make(map[uint]*models.UserProfile)}
	eventRepo := &fakeEventRepo{}
	ingredientRepo := &fakeIngredientRepo{ingredients: []*models.Ingredient{
		{Name: "Egg", Calories: 155, Protein: 13, Carbs: 1, Fat: 11, UnitType: "per_piece", Active: true},
		{Name: "Rice", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, UnitType: "per_100g", Active: true},
		{Name: "Stale bread", Calories: 250, Protein: 9, Carbs: 49, Fat: 3, UnitType: "per_100g", Active: false},
	}}

	svc := NewPlanService(planRepo, profileRepo, eventRepo, NewCatalogService(ingredientRepo))
	return svc, planRepo, profileRepo, eventRepo
}

func eggPlan() *models.MealPlan {
	// Calorie-only plan: no macro split, so scaling is driven purely by the
	// calorie target, matching the simplest production templates.
	return &models.MealPlan{
		Title:          "Cut week",
		TargetCalories: 930,
		Days:           []byte(`{"monday": {"meals": {"ontbijt": {"ingredients": [{"name": "Egg", "amount": 3, "unit": "stuks"}]}}}}`),
	}
}

func TestScaleForUserUsesDefaultProfile(t *testing.T) {
	svc, planRepo, _, events := newTestPlanService()
	plan, err := planRepo.Create(eggPlan())
	require.NoError(t, err)

	// No stored profile for user 7: target falls back to the plan's own
	// 930 kcal, which doubles the 465 kcal reference day.
	res, err := svc.ScaleForUser(plan.ID, ScaleRequestDTO{UserID: 7}, "req-1")
	require.NoError(t, err)

	assert.Equal(t, 2.0, res.Scaling.Factor)
	assert.Equal(t, 6.0, res.Days["monday"].Meals["breakfast"].Ingredients[0].Amount)
	assert.Empty(t, res.MissingIngredients)

	require.Len(t, events.events, 1)
	assert.Equal(t, uint(7), events.events[0].UserID)
	assert.Equal(t, "req-1", events.events[0].RequestID)
}

func TestScaleForUserProfileTargetWins(t *testing.T) {
	svc, planRepo, profileRepo, _ := newTestPlanService()
	plan, err := planRepo.Create(eggPlan())
	require.NoError(t, err)

	_, err = profileRepo.Create(&models.UserProfile{UserID: 7, TargetCalories: 465})
	require.NoError(t, err)

	res, err := svc.ScaleForUser(plan.ID, ScaleRequestDTO{UserID: 7}, "req-2")
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Scaling.Factor)
	assert.Equal(t, 465.0, res.Scaling.TargetCalories)
}

func TestScaleForUserExplicitOverrideWins(t *testing.T) {
	svc, planRepo, profileRepo, _ := newTestPlanService()
	plan, err := planRepo.Create(eggPlan())
	require.NoError(t, err)

	_, err = profileRepo.Create(&models.UserProfile{UserID: 7, TargetCalories: 465})
	require.NoError(t, err)

	calories := 930.0
	res, err := svc.ScaleForUser(plan.ID, ScaleRequestDTO{UserID: 7, TargetCalories: &calories}, "req-3")
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Scaling.Factor)
}

func TestScaleForUserPlanNotFound(t *testing.T) {
	svc, _, _, _ := newTestPlanService()
	_, err := svc.ScaleForUser(42, ScaleRequestDTO{}, "req-4")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestScaleForUserInactiveIngredientIsMissing(t *testing.T) {
	svc, planRepo, _, _ := newTestPlanService()
	plan, err := planRepo.Create(&models.MealPlan{
		Title:          "Bread week",
		TargetCalories: 2000,
		Days:           []byte(`{"monday": {"lunch": {"ingredients": [{"name": "Stale bread", "amount": 100, "unit": "gram"}]}}}`),
	})
	require.NoError(t, err)

	res, err := svc.ScaleForUser(plan.ID, ScaleRequestDTO{}, "req-5")
	require.NoError(t, err)

	// Inactive catalog entries do not resolve; the run still succeeds with
	// a report and a degenerate-reference warning.
	assert.Equal(t, []string{"Stale bread"}, res.MissingIngredients)
	assert.Equal(t, 1.0, res.Scaling.Factor)
	assert.NotEmpty(t, res.Warnings)
}

func TestDefaultProfileDocumentedValues(t *testing.T) {
	plan := eggPlan()
	profile := DefaultProfile(plan)
	assert.Equal(t, 30, profile.Age)
	assert.Equal(t, 80.0, profile.WeightKG)
	assert.Equal(t, "moderate", profile.ActivityLevel)
	assert.Equal(t, plan.TargetCalories, profile.TargetCalories)
}

func TestEstimateCaloriesMifflinStJeor(t *testing.T) {
	profile := &models.UserProfile{
		Age: 30, WeightKG: 80, HeightCM: 180, Sex: "male", ActivityLevel: "moderate",
	}
	// BMR = 10*80 + 6.25*180 - 5*30 + 5 = 1780; TDEE = 1780 * 1.55 = 2759
	assert.Equal(t, 2759.0, estimateCalories(profile))

	// No body data, no estimate.
	assert.Equal(t, 0.0, estimateCalories(&models.UserProfile{Age: 30}))
}
