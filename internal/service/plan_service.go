package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/media2net-app/toptiermen-sub008/internal/mealplan"
	"github.com/media2net-app/toptiermen-sub008/internal/models"
	"github.com/media2net-app/toptiermen-sub008/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrPlanNotFound is returned when the requested plan does not exist.
// Missing nutrient data is deliberately NOT an error: a partial result with
// a missing-ingredients report is more useful than a hard failure.
var ErrPlanNotFound = errors.New("meal plan not found")

type PlanService struct {
	repo        repository.PlanRepository
	profileRepo repository.ProfileRepository
	eventRepo   repository.ScaleEventRepository
	catalog     *CatalogService
}

func NewPlanService(
	repo repository.PlanRepository,
	profileRepo repository.ProfileRepository,
	eventRepo repository.ScaleEventRepository,
	catalog *CatalogService,
) *PlanService {
	return &PlanService{
		repo:        repo,
		profileRepo: profileRepo,
		eventRepo:   eventRepo,
		catalog:     catalog,
	}
}

// ScaledPlanResponse is the API response body for a scaling request.
type ScaledPlanResponse struct {
	PlanID             uint                          `json:"plan_id"`
	Title              string                        `json:"title"`
	Days               map[string]mealplan.ScaledDay `json:"days"`
	Scaling            mealplan.Info                 `json:"scaling"`
	TargetBreakdown    mealplan.Nutrition            `json:"target_breakdown"`
	WeekAverage        mealplan.Nutrition            `json:"week_average"`
	MissingIngredients []string                      `json:"missing_ingredients"`
	Warnings           []string                      `json:"warnings"`
}

// CreatePlan - create a weekly template plan
func (s *PlanService) CreatePlan(dto CreatePlanDTO) (*models.MealPlan, error) {
	if dto.Title == "" {
		return nil, fmt.Errorf("plan title cannot be empty")
	}

	plan := &models.MealPlan{
		Title:          dto.Title,
		Description:    dto.Description,
		TargetCalories: dto.TargetCalories,
		ProteinPct:     dto.ProteinPct,
		CarbsPct:       dto.CarbsPct,
		FatPct:         dto.FatPct,
		CategoryID:     dto.CategoryID,
		Days:           datatypes.JSON(dto.Days),
	}
	return s.repo.Create(plan)
}

// ListPlans - all template plans
func (s *PlanService) ListPlans() ([]*models.MealPlan, error) {
	return s.repo.FindAll()
}

// ListActivePlans - plans visible to members
func (s *PlanService) ListActivePlans() ([]*models.MealPlan, error) {
	return s.repo.FindActive()
}

// GetPlanByID - one template plan
func (s *PlanService) GetPlanByID(id uint) (*models.MealPlan, error) {
	plan, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlanNotFound
	}
	return plan, err
}

// UpdatePlan - partial update of a template plan
func (s *PlanService) UpdatePlan(id uint, dto UpdatePlanDTO) error {
	plan, err := s.GetPlanByID(id)
	if err != nil {
		return err
	}

	if dto.Title != "" {
		plan.Title = dto.Title
	}
	if dto.Description != "" {
		plan.Description = dto.Description
	}
	if dto.TargetCalories > 0 {
		plan.TargetCalories = dto.TargetCalories
	}
	if dto.ProteinPct > 0 {
		plan.ProteinPct = dto.ProteinPct
	}
	if dto.CarbsPct > 0 {
		plan.CarbsPct = dto.CarbsPct
	}
	if dto.FatPct > 0 {
		plan.FatPct = dto.FatPct
	}
	if dto.CategoryID != nil {
		plan.CategoryID = dto.CategoryID
	}
	if len(dto.Days) > 0 {
		plan.Days = datatypes.JSON(dto.Days)
	}

	return s.repo.Update(plan)
}

// DeletePlan - remove a template plan
func (s *PlanService) DeletePlan(id uint) error {
	return s.repo.Delete(id)
}

// ActivatePlan - make a plan visible to members
func (s *PlanService) ActivatePlan(id uint) error {
	return s.repo.Activate(id)
}

// ScaleForUser scales a template plan to a member's targets. The plan must
// exist; everything else degrades gracefully per the missing-ingredients
// report and the warnings list on the response.
func (s *PlanService) ScaleForUser(planID uint, req ScaleRequestDTO, requestID string) (*ScaledPlanResponse, error) {
	plan, err := s.GetPlanByID(planID)
	if err != nil {
		return nil, err
	}

	week, err := mealplan.Normalize(plan.Days)
	if err != nil {
		return nil, fmt.Errorf("plan %d: %w", planID, err)
	}

	catalog, err := s.catalog.ActiveCatalog()
	if err != nil {
		return nil, err
	}

	target := s.resolveTarget(plan, req)
	result := mealplan.Scale(week, target, catalog)

	if s.eventRepo != nil {
		_, err := s.eventRepo.Create(&models.ScaleEvent{
			UserID:            req.UserID,
			PlanID:            plan.ID,
			RequestID:         requestID,
			Factor:            result.Info.Factor,
			ReferenceCalories: result.Info.ReferenceCalories,
			TargetCalories:    result.Info.TargetCalories,
			MissingCount:      len(result.MissingIngredients),
		})
		if err != nil {
			log.Printf("Warning: failed to record scale event: %v", err)
		}
	}

	return &ScaledPlanResponse{
		PlanID:             plan.ID,
		Title:              plan.Title,
		Days:               result.Days,
		Scaling:            result.Info,
		TargetBreakdown:    planTarget(plan).Breakdown(),
		WeekAverage:        result.WeekAverage,
		MissingIngredients: result.MissingIngredients,
		Warnings:           result.Warnings,
	}, nil
}

// resolveTarget picks the member's nutrition target: explicit request
// overrides win, then the stored profile, then the documented default
// profile built from the plan itself. The default is constructed here,
// explicitly; nothing downstream reaches into ambient state.
func (s *PlanService) resolveTarget(plan *models.MealPlan, req ScaleRequestDTO) mealplan.Target {
	profile := s.loadProfile(plan, req.UserID)
	target := targetFromProfile(plan, profile)

	if req.TargetCalories != nil {
		target.Calories = *req.TargetCalories
	}
	if req.ProteinGrams != nil {
		target.ProteinGrams = req.ProteinGrams
	}
	if req.CarbsGrams != nil {
		target.CarbsGrams = req.CarbsGrams
	}
	if req.FatGrams != nil {
		target.FatGrams = req.FatGrams
	}
	return target
}

func (s *PlanService) loadProfile(plan *models.MealPlan, userID uint) *models.UserProfile {
	if userID != 0 && s.profileRepo != nil {
		profile, err := s.profileRepo.FindByUserID(userID)
		if err == nil {
			return profile
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Warning: failed to load profile for user %d: %v", userID, err)
		}
	}
	return DefaultProfile(plan)
}

// DefaultProfile is the documented fallback for members without a stored
// profile: age 30, 80 kg, moderate activity, and the plan's own targets.
func DefaultProfile(plan *models.MealPlan) *models.UserProfile {
	return &models.UserProfile{
		Age:            30,
		WeightKG:       80,
		ActivityLevel:  "moderate",
		TargetCalories: plan.TargetCalories,
		ProteinPct:     plan.ProteinPct,
		CarbsPct:       plan.CarbsPct,
		FatPct:         plan.FatPct,
	}
}

// planTarget is the plan-level target breakdown shown next to the result.
func planTarget(plan *models.MealPlan) mealplan.Target {
	return mealplan.Target{
		Calories:   float64(plan.TargetCalories),
		ProteinPct: plan.ProteinPct,
		CarbsPct:   plan.CarbsPct,
		FatPct:     plan.FatPct,
	}
}

func targetFromProfile(plan *models.MealPlan, profile *models.UserProfile) mealplan.Target {
	target := mealplan.Target{
		Calories:   float64(profile.TargetCalories),
		ProteinPct: profile.ProteinPct,
		CarbsPct:   profile.CarbsPct,
		FatPct:     profile.FatPct,
	}
	if target.Calories <= 0 {
		if est := estimateCalories(profile); est > 0 {
			target.Calories = est
		} else {
			target.Calories = float64(plan.TargetCalories)
		}
	}
	if target.ProteinPct <= 0 && target.CarbsPct <= 0 && target.FatPct <= 0 {
		target.ProteinPct = plan.ProteinPct
		target.CarbsPct = plan.CarbsPct
		target.FatPct = plan.FatPct
	}
	return target
}
