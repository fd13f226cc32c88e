package api

const (
	// BaseURL is the default host serving the train-info endpoint
	BaseURL = "http://localhost:8080"

	// EndpointTrain returns schedule data for one train.
	// Required params: train_no
	// The body is JSON when the train is known, and may be plain text otherwise.
	EndpointTrain = "/api/train.php"

	// ParamTrainNumber is the single query parameter of EndpointTrain
	ParamTrainNumber = "train_no"
)
