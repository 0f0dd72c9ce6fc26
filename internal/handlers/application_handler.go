package handlers

import (
	"errors"
	"log"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careerboard/careerboard-api/internal/authz"
	"github.com/careerboard/careerboard-api/internal/models"
	"github.com/careerboard/careerboard-api/internal/services/mailer"
	"github.com/careerboard/careerboard-api/internal/services/storage"
)

type ApplicationHandler struct {
	DB     *gorm.DB
	Store  storage.ResumeStore
	Mailer mailer.Sender
}

func NewApplicationHandler(db *gorm.DB, store storage.ResumeStore, sender mailer.Sender) *ApplicationHandler {
	return &ApplicationHandler{DB: db, Store: store, Mailer: sender}
}

func validResumeExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".docx":
		return true
	}
	return false
}

func applicationObject(app *models.Application) fiber.Map {
	obj := fiber.Map{
		"id":           app.ID,
		"applicant":    app.ApplicantID,
		"job":          app.JobID,
		"resume_link":  app.ResumeLink,
		"cover_letter": app.CoverLetter,
		"status":       app.Status,
		"applied_at":   app.AppliedAt,
	}
	if app.Applicant != nil {
		obj["applicant_name"] = app.Applicant.FullName
	}
	return obj
}

// Apply submits a multipart application (job_id, cover_letter, resume file)
// for the calling applicant.
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	uid, err := getAuth(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	jobID, err := uuid.Parse(c.FormValue("job_id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Job not found.", "Invalid job_id")
	}

	var job models.Job
	if err := h.DB.Preload("CreatedBy").First(&job, "id = ?", jobID).Error; err != nil {
		return fail(c, fiber.StatusBadRequest, "Job not found.", "Invalid job_id")
	}

	var count int64
	if err := h.DB.Model(&models.Application{}).
		Where("applicant_id = ? AND job_id = ?", uid, job.ID).
		Count(&count).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if count > 0 {
		return fail(c, fiber.StatusBadRequest, "You have already applied for this job.",
			"Duplicate application")
	}

	resume, err := c.FormFile("resume")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Resume file is required.", "Resume file missing")
	}
	if !validResumeExt(resume.Filename) {
		return fail(c, fiber.StatusBadRequest,
			"Unsupported resume file format. Only PDF and DOCX allowed.", "Invalid file format")
	}

	coverLetter := c.FormValue("cover_letter")
	if utf8.RuneCountInString(coverLetter) > 200 {
		return fail(c, fiber.StatusBadRequest, "Cover letter must be under 200 characters.",
			"Cover letter too long")
	}

	src, err := resume.Open()
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to upload resume.")
	}
	defer src.Close()

	resumeURL, err := h.Store.Save(resume.Filename, src)
	if err != nil {
		log.Println("Error uploading resume:", err)
		return fail(c, fiber.StatusInternalServerError, "Failed to upload resume.")
	}

	app := models.Application{
		ApplicantID: uid,
		JobID:       job.ID,
		ResumeLink:  resumeURL,
		CoverLetter: coverLetter,
		Status:      models.ApplicationStatusApplied,
	}
	if err := h.DB.Create(&app).Error; err != nil {
		// Concurrent duplicate applies race past the count check; the
		// unique (applicant_id, job_id) index settles it.
		if isUniqueViolation(err) {
			return fail(c, fiber.StatusBadRequest, "You have already applied for this job.",
				"Duplicate application")
		}
		return fail(c, fiber.StatusInternalServerError, "Failed to create application")
	}

	var applicant models.User
	if err := h.DB.First(&applicant, "id = ?", uid).Error; err == nil {
		app.Applicant = &applicant
		if job.CreatedBy != nil {
			subject, body := mailer.NewApplicationEmail(applicant.FullName, job.Title)
			if err := h.Mailer.Send(job.CreatedBy.Email, subject, body); err != nil {
				log.Println("Error sending application notification:", err)
			}
		}
	}

	return ok(c, fiber.StatusCreated, "Application submitted successfully.", applicationObject(&app))
}

var trackSortColumns = map[string]string{
	"applied_at": "applications.applied_at",
	"company":    "users.full_name",
	"status":     "applications.status",
	"job_title":  "jobs.title",
}

// trackOrderClause maps a ?sort= value ("-applied_at", "company", ...) onto
// a SQL order clause, defaulting to newest first.
func trackOrderClause(sortParam string) string {
	desc := strings.HasPrefix(sortParam, "-")
	key := strings.TrimPrefix(sortParam, "-")
	col, ok := trackSortColumns[key]
	if !ok {
		return "applications.applied_at DESC"
	}
	if desc {
		return col + " DESC"
	}
	return col + " ASC"
}

// Track lists the calling applicant's own applications joined with job and
// company display fields.
func (h *ApplicationHandler) Track(c *fiber.Ctx) error {
	uid, err := getAuth(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	type row struct {
		ID          uuid.UUID
		JobTitle    string
		CompanyName string
		Status      models.ApplicationStatus
		ResumeLink  string
		CoverLetter string
		AppliedAt   time.Time
	}

	companyQ := c.Query("company")
	jobStatusQ := c.Query("job_status")
	statusQ := c.Query("status")

	base := func() *gorm.DB {
		q := h.DB.Table("applications").
			Joins("JOIN jobs ON jobs.id = applications.job_id").
			Joins("JOIN users ON users.id = jobs.created_by_id").
			Where("applications.applicant_id = ?", uid)
		if companyQ != "" {
			q = q.Where("LOWER(users.full_name) LIKE ?", "%"+strings.ToLower(companyQ)+"%")
		}
		if jobStatusQ != "" {
			q = q.Where("jobs.status = ?", jobStatusQ)
		}
		if statusQ != "" {
			q = q.Where("applications.status IN ?", strings.Split(statusQ, ","))
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}

	page, pageSize, offset := parsePagination(c, 10, 100)

	var rows []row
	if err := base().
		Select("applications.id, jobs.title AS job_title, users.full_name AS company_name, applications.status, applications.resume_link, applications.cover_letter, applications.applied_at").
		Order(trackOrderClause(c.Query("sort"))).
		Limit(pageSize).
		Offset(offset).
		Scan(&rows).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}

	out := make([]fiber.Map, 0, len(rows))
	for _, r := range rows {
		out = append(out, fiber.Map{
			"id":           r.ID,
			"job_title":    r.JobTitle,
			"company_name": r.CompanyName,
			"status":       r.Status,
			"resume_link":  r.ResumeLink,
			"cover_letter": r.CoverLetter,
			"applied_at":   r.AppliedAt,
		})
	}

	return okPaged(c, "Applications retrieved successfully", out, page, pageSize, total)
}

// JobApplications lists applications submitted to one job, owner only. A
// job that does not exist yields an empty list rather than a 404.
func (h *ApplicationHandler) JobApplications(c *fiber.Ctx) error {
	uid, err := getAuth(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	page, pageSize, offset := parsePagination(c, 10, 50)

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return okPaged(c, "Applications retrieved successfully.", []fiber.Map{}, page, pageSize, 0)
	}

	var job models.Job
	if err := h.DB.First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return okPaged(c, "Applications retrieved successfully.", []fiber.Map{}, page, pageSize, 0)
		}
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}

	if !authz.OwnsJob(uid, &job) {
		return fail(c, fiber.StatusForbidden, "Unauthorized access",
			"You do not have permission to view applications for this job.")
	}

	statusQ := c.Query("status")

	base := func() *gorm.DB {
		q := h.DB.Model(&models.Application{}).Where("job_id = ?", job.ID)
		if statusQ != "" {
			q = q.Where("LOWER(status) = ?", strings.ToLower(statusQ))
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}

	var apps []models.Application
	if err := base().
		Preload("Applicant").
		Order("applied_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&apps).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}

	out := make([]fiber.Map, 0, len(apps))
	for _, app := range apps {
		obj := fiber.Map{
			"id":           app.ID,
			"job_title":    job.Title,
			"status":       app.Status,
			"resume_link":  app.ResumeLink,
			"cover_letter": app.CoverLetter,
			"applied_at":   app.AppliedAt,
		}
		if app.Applicant != nil {
			obj["applicant_name"] = app.Applicant.FullName
		}
		out = append(out, obj)
	}

	return okPaged(c, "Applications retrieved successfully.", out, page, pageSize, total)
}

type UpdateApplicationStatusReq struct {
	Status string `json:"status"`
}

// UpdateStatus moves an application to a new status. Only the company that
// owns the underlying job may do this; effective changes to Interview,
// Rejected or Hired mail the applicant.
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	uid, err := getAuth(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusNotFound, "Application not found.")
	}

	var app models.Application
	if err := h.DB.
		Preload("Applicant").
		Preload("Job").
		Preload("Job.CreatedBy").
		First(&app, "id = ?", appID).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Application not found.")
	}

	if !authz.OwnsApplication(uid, &app) {
		return fail(c, fiber.StatusForbidden, "Unauthorized",
			"You do not own this job's application.")
	}

	var req UpdateApplicationStatusReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	newStatus, valid := models.NormalizeApplicationStatus(req.Status)
	if !valid {
		errs := FieldErrors{}
		errs.Add("status", "Invalid status value.")
		return validationFail(c, "Invalid data", errs)
	}

	if newStatus == app.Status {
		return ok(c, fiber.StatusOK, "Status unchanged.", fiber.Map{
			"id":     app.ID,
			"status": app.Status,
		})
	}

	if err := h.DB.Model(&app).Update("status", newStatus).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to update status")
	}
	app.Status = newStatus

	// Notification failures never undo the status change.
	if app.Applicant != nil && app.Job != nil && app.Job.CreatedBy != nil {
		subject, body, notify := mailer.StatusUpdateEmail(
			app.Applicant.FullName, app.Job.Title, app.Job.CreatedBy.FullName, newStatus)
		if notify {
			if err := h.Mailer.Send(app.Applicant.Email, subject, body); err != nil {
				log.Println("Error sending status notification:", err)
			}
		}
	}

	return ok(c, fiber.StatusOK, "Application status updated successfully.", fiber.Map{
		"id":     app.ID,
		"status": app.Status,
	})
}
