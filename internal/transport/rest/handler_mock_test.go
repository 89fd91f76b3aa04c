package rest

import (
	"context"

	"github.com/eduveda/course-backend/internal/domain"
	"github.com/eduveda/course-backend/internal/service/assessment"
	"github.com/eduveda/course-backend/internal/service/course"
)

var _ resourceService = &resourceServiceMock{}

type resourceServiceMock struct {
	ReplaceResourcesFunc func(ctx context.Context, input course.ReplaceResourcesInput) (*course.ReplaceResult, error)
	ListResourcesFunc    func(ctx context.Context, courseID int64) ([]domain.Resource, error)
}

func (mock *resourceServiceMock) ReplaceResources(ctx context.Context, input course.ReplaceResourcesInput) (*course.ReplaceResult, error) {
	if mock.ReplaceResourcesFunc == nil {
		panic("resourceServiceMock.ReplaceResourcesFunc: method is nil but resourceService.ReplaceResources was just called")
	}
	return mock.ReplaceResourcesFunc(ctx, input)
}

func (mock *resourceServiceMock) ListResources(ctx context.Context, courseID int64) ([]domain.Resource, error) {
	if mock.ListResourcesFunc == nil {
		panic("resourceServiceMock.ListResourcesFunc: method is nil but resourceService.ListResources was just called")
	}
	return mock.ListResourcesFunc(ctx, courseID)
}

var _ assessmentService = &assessmentServiceMock{}

type assessmentServiceMock struct {
	ReplaceAssessmentsFunc func(ctx context.Context, input assessment.ReplaceAssessmentsInput) (*assessment.ReplaceResult, error)
	ListAssessmentsFunc    func(ctx context.Context, courseID int64) ([]domain.Assessment, error)
}

func (mock *assessmentServiceMock) ReplaceAssessments(ctx context.Context, input assessment.ReplaceAssessmentsInput) (*assessment.ReplaceResult, error) {
	if mock.ReplaceAssessmentsFunc == nil {
		panic("assessmentServiceMock.ReplaceAssessmentsFunc: method is nil but assessmentService.ReplaceAssessments was just called")
	}
	return mock.ReplaceAssessmentsFunc(ctx, input)
}

func (mock *assessmentServiceMock) ListAssessments(ctx context.Context, courseID int64) ([]domain.Assessment, error) {
	if mock.ListAssessmentsFunc == nil {
		panic("assessmentServiceMock.ListAssessmentsFunc: method is nil but assessmentService.ListAssessments was just called")
	}
	return mock.ListAssessmentsFunc(ctx, courseID)
}
