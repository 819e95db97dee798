// Package faillog — сквозная обёртка наблюдаемости отказов.
//
// Обёртка выполняет операцию без изменений и, только если операция
// отказала (ненулевая ошибка или panic), пишет в приёмник ровно одну
// структурированную строку: метка времени, корреляционный идентификатор,
// имя операции, категория отказа, сообщение, строка исходника и
// отсортированные контекстные поля. Затем отказ распространяется дальше
// без изменений: вызывающий код видит тот же результат, что и без обёртки.
//
// Формат строки фиксирован (контракт с приёмником):
//
//	<ts> - <id> - <op> - [logged args: k: v, ... - ]ERROR: <Категория>: <msg> (Line: <n|Unknown>)
//
// Классификацией занимается пакет classify; приёмник, источник времени и
// генератор идентификаторов — внешние зависимости Recorder с разумными
// значениями по умолчанию (stdout, time.Now, uuid).
//
// Известное ограничение: если приёмник сам паникует при записи, эта
// паника вытесняет исходный отказ. Поведение задокументировано и
// сознательно не исправляется.
package faillog
