package testutil

// Sample bodies returned by the train-info endpoint

// SampleTrainResponse is a complete train with a three-stop route
const SampleTrainResponse = `{
	"trainName": "Rajdhani Express",
	"trainNumber": "12951",
	"schedule": [
		{
			"stationName": "Mumbai Central",
			"departureTime": "17:00",
			"platform": "3"
		},
		{
			"stationName": "Vadodara Jn",
			"arrivalTime": "20:45",
			"departureTime": "20:55",
			"platform": "1"
		},
		{
			"stationName": "New Delhi",
			"arrivalTime": "08:35"
		}
	]
}`

// SampleNumericTrainResponse carries the number and platforms as JSON numbers
const SampleNumericTrainResponse = `{
	"trainName": "Shatabdi",
	"trainNumber": 12002,
	"schedule": [
		{"stationName": "Bhopal", "departureTime": "14:40", "platform": 1}
	]
}`

// SampleNoScheduleResponse has a header but no route
const SampleNoScheduleResponse = `{"trainName": "Ghost Train", "trainNumber": "00000"}`

// SampleEmptyScheduleResponse has an empty route
const SampleEmptyScheduleResponse = `{"trainName": "Ghost Train", "trainNumber": "00000", "schedule": []}`

// SampleMessageResponse is an upstream JSON notice without train data
const SampleMessageResponse = `{"message": "Train not running today"}`

// SamplePlainTextResponse is a non-JSON body
const SamplePlainTextResponse = `Invalid train number <b>999</b>`

// SampleArrayResponse is valid JSON of an unexpected shape
const SampleArrayResponse = `[1, 2, 3]`

// SampleBOMTrainResponse is a valid response prefixed with a UTF-8 byte order mark
const SampleBOMTrainResponse = "\ufeff" + `{"trainName": "Intercity", "trainNumber": "12009", "schedule": [{"stationName": "Surat"}]}`
