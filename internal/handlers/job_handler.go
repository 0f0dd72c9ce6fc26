package handlers

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careerboard/careerboard-api/internal/authz"
	"github.com/careerboard/careerboard-api/internal/models"
)

type JobHandler struct {
	DB *gorm.DB
}

func NewJobHandler(db *gorm.DB) *JobHandler {
	return &JobHandler{DB: db}
}

type CreateJobReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// UpdateJobReq uses pointers so a PATCH can leave fields untouched.
type UpdateJobReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Status      *string `json:"status"`
}

func validTitle(title string) bool {
	n := utf8.RuneCountInString(title)
	return n >= 1 && n <= 100
}

func validDescription(desc string) bool {
	n := utf8.RuneCountInString(desc)
	return n >= 20 && n <= 2000
}

// truncateDescription shortens list-view descriptions the way the my-jobs
// endpoint presents them.
func truncateDescription(desc string, max int) string {
	if utf8.RuneCountInString(desc) <= max {
		return desc
	}
	runes := []rune(desc)
	return string(runes[:max]) + "..."
}

func jobObject(job *models.Job) fiber.Map {
	return fiber.Map{
		"id":          job.ID,
		"title":       job.Title,
		"description": job.Description,
		"location":    job.Location,
		"status":      job.Status,
		"created_by":  job.CreatedByID,
		"created_at":  job.CreatedAt,
	}
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	uid, err := getAuth(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req CreateJobReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	req.Title = strings.TrimSpace(req.Title)
	errs := FieldErrors{}
	if !validTitle(req.Title) {
		errs.Add("title", "Title must be between 1 and 100 characters.")
	}
	if !validDescription(req.Description) {
		errs.Add("description", "Description must be between 20 and 2000 characters.")
	}
	if len(errs) > 0 {
		return validationFail(c, "Invalid data", errs)
	}

	job := models.Job{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Status:      models.JobStatusDraft,
		CreatedByID: uid,
	}
	if err := h.DB.Create(&job).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to create job")
	}

	return ok(c, fiber.StatusCreated, "Job created successfully", jobObject(&job))
}

// ownedJob loads a job and enforces the ownership rule shared by the
// manage endpoints. A missing job is reported the same way as someone
// else's job.
func (h *JobHandler) ownedJob(c *fiber.Ctx) (*models.Job, error) {
	uid, err := getAuth(c)
	if err != nil {
		return nil, fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fail(c, fiber.StatusBadRequest, "Invalid job ID")
	}

	var job models.Job
	if err := h.DB.First(&job, "id = ?", jobID).Error; err != nil {
		return nil, fail(c, fiber.StatusForbidden, "Unauthorized access",
			"You do not own this job or lack permissions.")
	}
	if !authz.OwnsJob(uid, &job) {
		return nil, fail(c, fiber.StatusForbidden, "Unauthorized access",
			"You do not own this job or lack permissions.")
	}
	return &job, nil
}

func (h *JobHandler) GetOne(c *fiber.Ctx) error {
	job, errResp := h.ownedJob(c)
	if job == nil {
		return errResp
	}
	return ok(c, fiber.StatusOK, "Job retrieved successfully", jobObject(job))
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	job, errResp := h.ownedJob(c)
	if job == nil {
		return errResp
	}

	var req UpdateJobReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	errs := FieldErrors{}
	if req.Title != nil && !validTitle(strings.TrimSpace(*req.Title)) {
		errs.Add("title", "Title must be between 1 and 100 characters.")
	}
	if req.Description != nil && !validDescription(*req.Description) {
		errs.Add("description", "Description must be between 20 and 2000 characters.")
	}
	if req.Status != nil {
		next := models.JobStatus(*req.Status)
		if !next.Valid() {
			errs.Add("status", "Invalid status value.")
		} else if !job.Status.CanTransitionTo(next) {
			errs.Add("status", fmt.Sprintf("Invalid status transition from %s to %s.", job.Status, next))
		}
	}
	if len(errs) > 0 {
		return validationFail(c, "Invalid data", errs)
	}

	if req.Title != nil {
		job.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Status != nil {
		job.Status = models.JobStatus(*req.Status)
	}

	if err := h.DB.Save(job).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to update job")
	}
	return ok(c, fiber.StatusOK, "Job updated successfully", jobObject(job))
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	job, errResp := h.ownedJob(c)
	if job == nil {
		return errResp
	}
	if err := h.DB.Delete(job).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to delete job")
	}
	return ok(c, fiber.StatusOK, "Job deleted successfully", nil)
}

// Browse lists Open jobs for any authenticated caller, with substring
// filters on title, location and company name.
func (h *JobHandler) Browse(c *fiber.Ctx) error {
	type row struct {
		ID          uuid.UUID
		Title       string
		Description string
		Location    string
		Status      models.JobStatus
		CompanyName string
		CreatedAt   time.Time
	}

	titleQ := c.Query("title")
	locationQ := c.Query("location")
	companyQ := c.Query("company")

	base := func() *gorm.DB {
		q := h.DB.Table("jobs").
			Joins("JOIN users ON users.id = jobs.created_by_id").
			Where("jobs.status = ?", models.JobStatusOpen)
		if titleQ != "" {
			q = q.Where("LOWER(jobs.title) LIKE ?", "%"+strings.ToLower(titleQ)+"%")
		}
		if locationQ != "" {
			q = q.Where("LOWER(jobs.location) LIKE ?", "%"+strings.ToLower(locationQ)+"%")
		}
		if companyQ != "" {
			q = q.Where("LOWER(users.full_name) LIKE ?", "%"+strings.ToLower(companyQ)+"%")
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch jobs")
	}

	page, pageSize, offset := parsePagination(c, 10, 100)

	var rows []row
	if err := base().
		Select("jobs.id, jobs.title, jobs.description, jobs.location, jobs.status, users.full_name AS company_name, jobs.created_at").
		Order("jobs.created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Scan(&rows).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch jobs")
	}

	out := make([]fiber.Map, 0, len(rows))
	for _, r := range rows {
		out = append(out, fiber.Map{
			"id":           r.ID,
			"title":        r.Title,
			"description":  r.Description,
			"location":     r.Location,
			"status":       r.Status,
			"company_name": r.CompanyName,
			"created_at":   r.CreatedAt,
		})
	}

	return okPaged(c, "Jobs retrieved successfully", out, page, pageSize, total)
}

// MyJobs lists the calling company's own jobs annotated with each job's
// application count.
func (h *JobHandler) MyJobs(c *fiber.Ctx) error {
	uid, err := getAuth(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	statusQ := c.Query("status")

	base := func() *gorm.DB {
		q := h.DB.Model(&models.Job{}).Where("created_by_id = ?", uid)
		if statusQ != "" {
			q = q.Where("status = ?", statusQ)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch jobs")
	}

	page, pageSize, offset := parsePagination(c, 10, 100)

	var jobs []models.Job
	if err := base().
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&jobs).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch jobs")
	}

	out := make([]fiber.Map, 0, len(jobs))
	for _, job := range jobs {
		var numApplications int64
		if err := h.DB.Model(&models.Application{}).
			Where("job_id = ?", job.ID).
			Count(&numApplications).Error; err != nil {
			return fail(c, fiber.StatusInternalServerError, "Failed to fetch jobs")
		}
		out = append(out, fiber.Map{
			"id":               job.ID,
			"title":            job.Title,
			"description":      truncateDescription(job.Description, 200),
			"location":         job.Location,
			"status":           job.Status,
			"created_at":       job.CreatedAt,
			"num_applications": numApplications,
		})
	}

	return okPaged(c, "Jobs retrieved successfully", out, page, pageSize, total)
}

// Detail returns one job to any authenticated caller.
func (h *JobHandler) Detail(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusNotFound, "Job not found.",
			"Job with the given ID does not exist.")
	}

	var job models.Job
	if err := h.DB.Preload("CreatedBy").First(&job, "id = ?", jobID).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Job not found.",
			"Job with the given ID does not exist.")
	}

	obj := jobObject(&job)
	if job.CreatedBy != nil {
		obj["created_by_name"] = job.CreatedBy.FullName
	}
	return ok(c, fiber.StatusOK, "Job details retrieved successfully.", obj)
}
