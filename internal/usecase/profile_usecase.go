package usecase

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hyrind/role-recommender/internal/logger"
	"github.com/hyrind/role-recommender/internal/model"
	"github.com/hyrind/role-recommender/internal/repository"
	"github.com/hyrind/role-recommender/internal/service"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProfileUsecase derives a candidate's structured skill profile from their
// raw intake form.
type ProfileUsecase struct {
	intakeRepo  *repository.IntakeFormRepository
	profileRepo *repository.SkillProfileRepository
	log         *logger.Logger
}

func NewProfileUsecase(intakeRepo *repository.IntakeFormRepository, profileRepo *repository.SkillProfileRepository, log *logger.Logger) *ProfileUsecase {
	return &ProfileUsecase{
		intakeRepo:  intakeRepo,
		profileRepo: profileRepo,
		log:         log.With("usecase", "profile"),
	}
}

// Get returns the stored profile; gorm.ErrRecordNotFound when never synced.
func (uc *ProfileUsecase) Get(userID uuid.UUID) (*model.SkillProfile, error) {
	return uc.profileRepo.FindByUserID(userID)
}

// Sync rebuilds the profile from the intake form and overwrites the stored
// row. A candidate without intake data gets a bare profile with defaults;
// that is not an error.
func (uc *ProfileUsecase) Sync(userID uuid.UUID) (*model.SkillProfile, error) {
	profile, err := uc.profileRepo.FindByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = &model.SkillProfile{ID: uuid.New(), UserID: userID}
	}

	intake, err := uc.intakeRepo.FindByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// No intake data: persist the profile as-is so the row exists.
		if err := uc.profileRepo.Upsert(profile); err != nil {
			return nil, err
		}
		uc.log.Debug("synced bare profile, no intake form", "user_id", userID)
		return profile, nil
	}

	primary := service.DedupeSkills(
		service.SplitSkills(intake.SkilledIn),
		service.SplitSkills(intake.ExperiencedWith),
	)
	learning := service.DedupeSkills(
		service.SplitSkills(intake.CurrentlyLearning),
		service.SplitSkills(intake.LearningTools),
	)
	secondary := service.DedupeSkills(service.SplitSkills(intake.NonTechnicalSkills))

	now := time.Now()

	profile.PrimarySkills = datatypes.NewJSONSlice(primary)
	profile.SecondarySkills = datatypes.NewJSONSlice(secondary)
	profile.LearningSkills = datatypes.NewJSONSlice(learning)
	profile.TotalYearsExperience = totalExperience(intake)
	profile.HighestDegree = firstNonEmpty(intake.HighestDegree, intake.BachelorsDegree)
	profile.FieldOfStudy = firstNonEmpty(intake.HighestFieldOfStudy, intake.BachelorsFieldOfStudy)
	profile.DesiredRoles = datatypes.NewJSONSlice(service.SplitSkills(intake.DesiredJobRole))
	profile.LastSyncedAt = &now
	profile.RecalculateCompleteness()

	if err := uc.profileRepo.Upsert(profile); err != nil {
		return nil, err
	}

	uc.log.Debug("synced profile from intake",
		"user_id", userID,
		"primary_skills", len(primary),
		"years_experience", profile.TotalYearsExperience,
		"completeness", profile.ProfileCompleteness,
	)
	return profile, nil
}

// totalExperience sums the listed employment periods in years, falling back
// to the self-reported years in country when no period is usable.
func totalExperience(intake *model.IntakeForm) float64 {
	total := 0.0
	pairs := [][2]*time.Time{
		{intake.Job1StartDate, intake.Job1EndDate},
		{intake.Job2StartDate, intake.Job2EndDate},
		{intake.Job3StartDate, intake.Job3EndDate},
	}
	for _, p := range pairs {
		start, end := p[0], p[1]
		if start == nil || end == nil {
			continue
		}
		total += end.Sub(*start).Hours() / 24 / 365
	}
	if total == 0 && intake.TotalYearsInCountry > 0 {
		total = intake.TotalYearsInCountry
	}
	return math.Round(total*10) / 10
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
