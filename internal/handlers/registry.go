package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	CityHandler     *CityHandler
	SalonHandler    *SalonHandler
	MasterHandler   *MasterHandler
	CatalogHandler  *CatalogHandler
	VacancyHandler  *VacancyHandler
	RelationHandler *RelationHandler
	PhotoHandler    *PhotoHandler
}
