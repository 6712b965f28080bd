package service

import (
	"go-wholesale-console/internal/model"
)

// DashboardService serves the static role dashboards and page panels.
type DashboardService interface {
	ForRole(role model.Role) model.Dashboard
	Panels(route string) []model.Panel
}

type dashboardService struct {
	dashboards map[model.Role]model.Dashboard
	pages      map[string][]model.Panel
}

func NewDashboardService() DashboardService {
	return &dashboardService{dashboards: model.MockDashboards, pages: model.MockPages}
}

func (s *dashboardService) ForRole(role model.Role) model.Dashboard {
	dash, ok := s.dashboards[role]
	if !ok {
		role = model.DefaultRole
		dash = s.dashboards[role]
	}
	dash.Role = role
	dash.KPIs = append([]model.KPI(nil), dash.KPIs...)
	dash.Charts = append([]model.Chart(nil), dash.Charts...)
	return dash
}

func (s *dashboardService) Panels(route string) []model.Panel {
	return append([]model.Panel(nil), s.pages[route]...)
}
