package class

// Major classifications for the tabula packages.
const (
	// MjrCommon classifies the errors common to all packages, i.e. logger misuse.
	MjrCommon Major = iota + 1
	// MjrConfig classifies the errors related with reading and validating
	// the configuration.
	MjrConfig
	// MjrModel classifies the errors related with the model orchestration.
	MjrModel
	// MjrQuery classifies the errors related with creating, operating on or
	// executing the queries.
	MjrQuery
	// MjrRepository classifies the errors related with the repository
	// factories and their container.
	MjrRepository
)

// Minor classifications within 'MjrCommon'.
const (
	// MnrCommonLogger is the 'MjrCommon' minor classification for the logger issues.
	MnrCommonLogger Minor = iota + 1
)

// Minor classifications within 'MjrConfig'.
const (
	// MnrConfigRead is the 'MjrConfig' minor classification for reading the config files.
	MnrConfigRead Minor = iota + 1
	// MnrConfigValue is the 'MjrConfig' minor classification for invalid config values.
	MnrConfigValue
)

// Minor classifications within 'MjrQuery'.
const (
	// MnrQueryJoin is the 'MjrQuery' minor classification for the join clause issues.
	MnrQueryJoin Minor = iota + 1
	// MnrQuerySort is the 'MjrQuery' minor classification for the order by clause issues.
	MnrQuerySort
	// MnrQueryValue is the 'MjrQuery' minor classification for the statement value issues.
	MnrQueryValue
	// MnrQueryExecution is the 'MjrQuery' minor classification for statement execution issues.
	MnrQueryExecution
	// MnrQueryResult is the 'MjrQuery' minor classification for the result handle issues.
	MnrQueryResult
)

// Minor classifications within 'MjrRepository'.
const (
	// MnrRepositoryFactory is the 'MjrRepository' minor classification for the
	// factory container issues.
	MnrRepositoryFactory Minor = iota + 1
	// MnrRepositoryConnection is the 'MjrRepository' minor classification for the
	// connection issues.
	MnrRepositoryConnection
)

var (
	// CommonLoggerUnknownLevel is the 'MjrCommon', 'MnrCommonLogger' classification
	// for an unknown logging level.
	CommonLoggerUnknownLevel = newClass(MjrCommon, MnrCommonLogger, 1)

	// ConfigReadFailed is the 'MjrConfig', 'MnrConfigRead' classification for the
	// config file read failures.
	ConfigReadFailed = newClass(MjrConfig, MnrConfigRead, 1)
	// ConfigUnmarshalFailed is the 'MjrConfig', 'MnrConfigRead' classification for
	// the config unmarshaling failures.
	ConfigUnmarshalFailed = newClass(MjrConfig, MnrConfigRead, 2)
	// ConfigValueInvalid is the 'MjrConfig', 'MnrConfigValue' classification for
	// config values that fail validation.
	ConfigValueInvalid = newClass(MjrConfig, MnrConfigValue, 1)

	// QueryJoinNoTarget is the 'MjrQuery', 'MnrQueryJoin' classification used when
	// a join condition is provided without any prior join target.
	QueryJoinNoTarget = newClass(MjrQuery, MnrQueryJoin, 1)
	// QuerySortNoField is the 'MjrQuery', 'MnrQuerySort' classification used when
	// an order by entry defines neither a column nor a function.
	QuerySortNoField = newClass(MjrQuery, MnrQuerySort, 1)
	// QueryValueEmpty is the 'MjrQuery', 'MnrQueryValue' classification used when
	// a statement is executed without any values to write.
	QueryValueEmpty = newClass(MjrQuery, MnrQueryValue, 1)
	// QueryExecutionFailed is the 'MjrQuery', 'MnrQueryExecution' classification
	// wrapping the driver execution failures.
	QueryExecutionFailed = newClass(MjrQuery, MnrQueryExecution, 1)
	// QueryNoResult is the 'MjrQuery', 'MnrQueryResult' classification used when
	// the result handle is accessed before any successful select.
	QueryNoResult = newClass(MjrQuery, MnrQueryResult, 1)

	// RepositoryFactoryNotFound is the 'MjrRepository', 'MnrRepositoryFactory'
	// classification used when no factory is registered under the requested name.
	RepositoryFactoryNotFound = newClass(MjrRepository, MnrRepositoryFactory, 1)
	// RepositoryFactoryAlreadyRegistered is the 'MjrRepository',
	// 'MnrRepositoryFactory' classification for duplicated factory registration.
	RepositoryFactoryAlreadyRegistered = newClass(MjrRepository, MnrRepositoryFactory, 2)
	// RepositoryConnectionFailed is the 'MjrRepository', 'MnrRepositoryConnection'
	// classification for the database connection failures.
	RepositoryConnectionFailed = newClass(MjrRepository, MnrRepositoryConnection, 1)
)
