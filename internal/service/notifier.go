package service

import (
	"context"
	"strconv"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/notification"
	"github.com/manikantxampleserv/dcc-sfa-sub007/pkg/utils"

	"github.com/sirupsen/logrus"
)

// notifyFirstApprover emails the first-level approver of a freshly created
// request. Best effort: failures log and the request stands.
func (s *ApprovalService) notifyFirstApprover(ctx context.Context, response *models.RequestResponse) {
	if len(response.Approvals) == 0 {
		return
	}

	first := response.Approvals[0]
	for _, a := range response.Approvals {
		if a.Sequence < first.Sequence {
			first = a
		}
	}

	approver, err := s.userDAO.GetByID(ctx, first.ApproverID)
	if err != nil || approver == nil {
		s.logger.WithError(err).WithField("approverID", first.ApproverID).
			Warn("Failed to load first approver for notification")
		return
	}

	data := s.baseTemplateData(ctx, &response.Request)
	data["employee_name"] = approver.Name
	data["sequence"] = strconv.Itoa(first.Sequence)
	if response.Requester != nil {
		data["requester_name"] = response.Requester.Name
	}

	s.send(ctx, notification.TemplateRequestCreated, approver.Email, data)
}

// notifyOutcome dispatches exactly one notification after a committed
// action: the requester on a terminal outcome, the new current approver on
// next_level.
func (s *ApprovalService) notifyOutcome(ctx context.Context, request *models.Request, result *models.ActionResult, input *models.TakeActionInput, nextStep *models.Approval) {
	switch result.Status {
	case models.OutcomeRejected, models.OutcomeFullyApproved:
		requester, err := s.userDAO.GetByID(ctx, request.RequesterID)
		if err != nil || requester == nil {
			s.logger.WithError(err).WithField("requesterID", request.RequesterID).
				Warn("Failed to load requester for notification")
			return
		}

		data := s.baseTemplateData(ctx, request)
		data["employee_name"] = requester.Name

		template := notification.TemplateRequestApproved
		if result.Status == models.OutcomeRejected {
			template = notification.TemplateRequestRejected
			if actor, err := s.userDAO.GetByID(ctx, input.ActedBy); err == nil && actor != nil {
				data["actor_name"] = actor.Name
			}
			if input.Remarks != nil {
				data["remarks"] = *input.Remarks
			}
		}

		s.send(ctx, template, requester.Email, data)

	case models.OutcomeNextLevel:
		if result.NextApprover == nil {
			return
		}

		data := s.baseTemplateData(ctx, request)
		data["employee_name"] = result.NextApprover.Name
		if nextStep != nil {
			data["sequence"] = strconv.Itoa(nextStep.Sequence)
			data["previous_sequence"] = strconv.Itoa(nextStep.Sequence - 1)
		}

		s.send(ctx, notification.TemplateRequestNextApprover, result.NextApprover.Email, data)
	}
}

func (s *ApprovalService) baseTemplateData(ctx context.Context, request *models.Request) map[string]string {
	data := s.details.GetDetails(ctx, request.RequestType, request.ReferenceID)
	data["request_type"] = utils.HumanizeRequestType(request.RequestType)
	data["request_number"] = request.RequestNumber
	return data
}

func (s *ApprovalService) send(ctx context.Context, templateKey, to string, data map[string]string) {
	tpl, ok := notification.LookupTemplate(templateKey)
	if !ok {
		s.logger.WithField("template", templateKey).Warn("Unknown notification template")
		return
	}

	subject, body := notification.RenderTemplate(tpl, data)
	message := &notification.Message{
		To:       to,
		Subject:  subject,
		Body:     body,
		Template: templateKey,
	}

	if err := s.dispatcher.Dispatch(ctx, message); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"template": templateKey,
			"to":       to,
		}).Warn("Failed to dispatch notification")
	}
}
