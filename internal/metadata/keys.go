package metadata

// Key identifies a CycloneDX field (or pseudo-field) we want to populate.
type Key string

func (k Key) String() string { return string(k) }

const (
	// BOM.metadata.component.* (MODEL)
	ComponentName               Key = "BOM.metadata.component.name"
	ComponentExternalReferences Key = "BOM.metadata.component.externalReferences"
	ComponentAuthors            Key = "BOM.metadata.component.authors"
	ComponentLicenses           Key = "BOM.metadata.component.licenses"
	ComponentDescription        Key = "BOM.metadata.component.description"
	ComponentTags               Key = "BOM.metadata.component.tags"

	// BOM.metadata.component.properties.*
	ComponentPropertiesLibraryName       Key = "BOM.metadata.component.properties.library_name"
	ComponentPropertiesBaseModel         Key = "BOM.metadata.component.properties.base_model"
	ComponentPropertiesBaseModelRelation Key = "BOM.metadata.component.properties.base_model_relation"

	// BOM.metadata.component.modelCard.* (MODEL CARD)
	ModelCardModelParametersTask                                 Key = "BOM.metadata.component.modelCard.modelParameters.task"
	ModelCardModelParametersArchitectureFamily                   Key = "BOM.metadata.component.modelCard.modelParameters.architectureFamily"
	ModelCardModelParametersModelArchitecture                    Key = "BOM.metadata.component.modelCard.modelParameters.modelArchitecture"
	ModelCardModelParametersDatasets                             Key = "BOM.metadata.component.modelCard.modelParameters.datasets"
	ModelCardQuantitativeAnalysisPerformanceMetrics              Key = "BOM.metadata.component.modelCard.quantitativeAnalysis.performanceMetrics"
	ModelCardConsiderationsUseCases                              Key = "BOM.metadata.component.modelCard.considerations.useCases"
	ModelCardConsiderationsEnvironmentalConsiderationsProperties Key = "BOM.metadata.component.modelCard.considerations.environmentalConsiderations.properties"
)

// DatasetKey identifies dataset-specific CycloneDX fields
type DatasetKey string

func (k DatasetKey) String() string { return string(k) }

const (
	// BOM.components[DATA].data[0].* (DATASET)
	DatasetDescription DatasetKey = "BOM.components[DATA].data.description"
	DatasetGovernance  DatasetKey = "BOM.components[DATA].data.governance.owners"
	DatasetContentsURL DatasetKey = "BOM.components[DATA].data.contents.url"

	// BOM.components[DATA].data[0].contents.properties.*
	DatasetPropertyTaskCategories      DatasetKey = "BOM.components[DATA].data.contents.properties.task_categories"
	DatasetPropertyTaskIDs             DatasetKey = "BOM.components[DATA].data.contents.properties.task_ids"
	DatasetPropertyLanguage            DatasetKey = "BOM.components[DATA].data.contents.properties.language"
	DatasetPropertyLanguageDetails     DatasetKey = "BOM.components[DATA].data.contents.properties.language_details"
	DatasetPropertySizeCategories      DatasetKey = "BOM.components[DATA].data.contents.properties.size_categories"
	DatasetPropertyAnnotationsCreators DatasetKey = "BOM.components[DATA].data.contents.properties.annotations_creators"
	DatasetPropertyLanguageCreators    DatasetKey = "BOM.components[DATA].data.contents.properties.language_creators"
	DatasetPropertyPrettyName          DatasetKey = "BOM.components[DATA].data.contents.properties.pretty_name"
	DatasetPropertySourceDatasets      DatasetKey = "BOM.components[DATA].data.contents.properties.source_datasets"
	DatasetPropertyPapersWithCodeID    DatasetKey = "BOM.components[DATA].data.contents.properties.paperswithcode_id"
	DatasetPropertyConfigs             DatasetKey = "BOM.components[DATA].data.contents.properties.configs"
	DatasetPropertyLicense             DatasetKey = "BOM.components[DATA].data.contents.properties.license"
	DatasetPropertyLicenseName         DatasetKey = "BOM.components[DATA].data.contents.properties.license_name"
	DatasetPropertyLicenseLink         DatasetKey = "BOM.components[DATA].data.contents.properties.license_link"
	DatasetPropertyLicenseDetails      DatasetKey = "BOM.components[DATA].data.contents.properties.license_details"
)
