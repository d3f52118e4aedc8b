// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Role is a closed enumeration of the job roles the engine understands.
// Role strings coming from external data files are validated against this
// set at load time, not at scoring time.
type Role string

// Recognized roles. RoleGeneral is the fallback when no role keyword
// table produces a nonzero confidence.
const (
	RoleGeneral Role = "general"

	RoleSoftwareEngineer  Role = "software_engineer"
	RoleFrontendDeveloper Role = "frontend_developer"
	RoleBackendDeveloper  Role = "backend_developer"
	RoleFullStackDev      Role = "full_stack_developer"
	RoleMobileDeveloper   Role = "mobile_developer"
	RoleDevOpsEngineer    Role = "devops_engineer"
	RoleQAEngineer        Role = "qa_engineer"
	RoleDataAnalyst       Role = "data_analyst"
	RoleDataScientist     Role = "data_scientist"
	RoleDataEngineer      Role = "data_engineer"
	RoleMLEngineer        Role = "machine_learning_engineer"
	RoleCybersecurity     Role = "cybersecurity_analyst"
	RoleNetworkEngineer   Role = "network_engineer"
	RoleCloudArchitect    Role = "cloud_architect"
	RoleITSupport         Role = "it_support_specialist"

	RoleBusinessAnalyst    Role = "business_analyst"
	RoleBusinessConsultant Role = "business_consultant"
	RoleMarketResearcher   Role = "market_research_analyst"
	RoleProductManager     Role = "product_manager"
	RoleProjectManager     Role = "project_manager"
	RoleOperationsManager  Role = "operations_manager"
	RoleSupplyChainAnalyst Role = "supply_chain_analyst"

	RoleAccountant       Role = "accountant"
	RoleFinancialAnalyst Role = "financial_analyst"
	RoleAuditor          Role = "auditor"
	RoleBanker           Role = "banking_officer"

	RoleMarketingManager Role = "marketing_manager"
	RoleDigitalMarketer  Role = "digital_marketer"
	RoleSalesExecutive   Role = "sales_executive"
	RoleContentWriter    Role = "content_writer"

	RoleHRManager Role = "hr_manager"
	RoleRecruiter Role = "recruiter"

	RoleUIUXDesigner    Role = "ui_ux_designer"
	RoleGraphicDesigner Role = "graphic_designer"

	RoleTeacher            Role = "teacher"
	RoleTrainingSpecialist Role = "training_specialist"

	RoleNurse      Role = "nurse"
	RolePhysician  Role = "physician"
	RolePharmacist Role = "pharmacist"

	RoleLawyer Role = "lawyer"

	RoleChef         Role = "chef"
	RoleHotelManager Role = "hotel_manager"

	RoleCivilEngineer      Role = "civil_engineer"
	RoleMechanicalEngineer Role = "mechanical_engineer"
	RoleElectricalEngineer Role = "electrical_engineer"

	RoleCustomerSupport Role = "customer_support_specialist"
)

// AllRoles lists every role except RoleGeneral, in the order role
// identification iterates them. The order is significant: confidence
// ties resolve to the first role reaching the maximum.
var AllRoles = []Role{
	RoleSoftwareEngineer,
	RoleFrontendDeveloper,
	RoleBackendDeveloper,
	RoleFullStackDev,
	RoleMobileDeveloper,
	RoleDevOpsEngineer,
	RoleQAEngineer,
	RoleDataAnalyst,
	RoleDataScientist,
	RoleDataEngineer,
	RoleMLEngineer,
	RoleCybersecurity,
	RoleNetworkEngineer,
	RoleCloudArchitect,
	RoleITSupport,
	RoleBusinessAnalyst,
	RoleBusinessConsultant,
	RoleMarketResearcher,
	RoleProductManager,
	RoleProjectManager,
	RoleOperationsManager,
	RoleSupplyChainAnalyst,
	RoleAccountant,
	RoleFinancialAnalyst,
	RoleAuditor,
	RoleBanker,
	RoleMarketingManager,
	RoleDigitalMarketer,
	RoleSalesExecutive,
	RoleContentWriter,
	RoleHRManager,
	RoleRecruiter,
	RoleUIUXDesigner,
	RoleGraphicDesigner,
	RoleTeacher,
	RoleTrainingSpecialist,
	RoleNurse,
	RolePhysician,
	RolePharmacist,
	RoleLawyer,
	RoleChef,
	RoleHotelManager,
	RoleCivilEngineer,
	RoleMechanicalEngineer,
	RoleElectricalEngineer,
	RoleCustomerSupport,
}

// ParseRole validates a role string from an external source.
// Unknown strings are a validation error, surfaced at load time.
func ParseRole(s string) (Role, error) {
	if s == string(RoleGeneral) {
		return RoleGeneral, nil
	}
	for _, r := range AllRoles {
		if s == string(r) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// IsGeneral reports whether the role is the fallback role.
func (r Role) IsGeneral() bool {
	return r == RoleGeneral || r == ""
}
